package symbol

import (
	"github.com/NickyBoy89/java2go-rename/keywords"
	"github.com/NickyBoy89/java2go-rename/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

// A frame is one level of lexical scope. Type frames make the fields of a type
// visible, and block frames hold the local variables declared in a block
type frame struct {
	class     *ClassScope
	variables map[string]*Definition
}

type binder struct {
	program *Program
	file    *FileScope
	frames  []*frame
}

// Bind resolves every identifier in the file to the field or variable that it
// refers to. Local variables and parameters are declared as they are found
//
// Bind must be called after the program has been linked, since field lookups
// go through superclasses that may be declared in other files
func Bind(program *Program, file *FileScope) {
	b := &binder{program: program, file: file}
	b.walk(file.root)

	log.WithFields(log.Fields{
		"file":     file.Path,
		"bindings": len(file.bindings),
	}).Debug("Bound identifiers")
}

func (b *binder) push(f *frame) {
	b.frames = append(b.frames, f)
}

func (b *binder) pop() {
	b.frames = b.frames[:len(b.frames)-1]
}

// class returns the innermost enclosing type
func (b *binder) class() *ClassScope {
	for ind := len(b.frames) - 1; ind >= 0; ind-- {
		if b.frames[ind].class != nil {
			return b.frames[ind].class
		}
	}
	return nil
}

func (b *binder) walk(node *sitter.Node) {
	switch node.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration", "record_declaration", "class_body":
		if class := b.file.ClassAt(node); class != nil {
			b.push(&frame{class: class})
			b.walkChildren(node)
			b.pop()
			return
		}
	case "method_declaration", "constructor_declaration", "lambda_expression", "block", "constructor_body",
		"for_statement", "enhanced_for_statement", "catch_clause", "try_with_resources_statement",
		"switch_block", "switch_body", "static_initializer":
		b.push(&frame{variables: make(map[string]*Definition)})
		b.walkChildren(node)
		b.pop()
		return
	case "identifier":
		b.bindIdentifier(node)
		return
	}
	b.walkChildren(node)
}

func (b *binder) walkChildren(node *sitter.Node) {
	for _, child := range nodeutil.Children(node) {
		b.walk(child)
	}
}

func (b *binder) bind(node *sitter.Node, def *Definition) {
	if def != nil {
		b.file.bindings[nodeutil.SpanOf(node)] = def
	}
}

// declare adds a new local variable to the innermost block
func (b *binder) declare(node *sitter.Node, typeNode *sitter.Node) {
	variable := b.program.NewVariable(b.class(), node.Content(b.file.source), parseTypeRef(typeNode, b.file.source))
	variable.pos = Position{File: b.file.Path, Line: nodeutil.Line(node)}

	for ind := len(b.frames) - 1; ind >= 0; ind-- {
		if b.frames[ind].variables != nil {
			b.frames[ind].variables[variable.originalName] = variable
			break
		}
	}
	b.bind(node, variable)
}

// firstType returns the first child of the node that is a type
func firstType(node *sitter.Node) *sitter.Node {
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		return typeNode
	}
	for _, child := range nodeutil.Children(node) {
		switch child.Type() {
		case "modifiers":
			continue
		case "catch_type":
			return child.NamedChild(0)
		case "integral_type", "floating_point_type", "boolean_type", "generic_type",
			"array_type", "type_identifier", "scoped_type_identifier", "annotated_type":
			return child
		}
	}
	return nil
}

func (b *binder) bindIdentifier(node *sitter.Node) {
	parent := node.Parent()
	switch parent.Type() {
	case "variable_declarator":
		if !nodeutil.IsField(parent, node, "name") {
			break
		}
		switch declaration := parent.Parent(); declaration.Type() {
		case "field_declaration", "constant_declaration":
			if class := b.class(); class != nil {
				if fields := class.FindField().ByOriginalName(node.Content(b.file.source)); len(fields) > 0 {
					b.bind(node, fields[0])
				}
			}
		default:
			b.declare(node, firstType(declaration))
		}
		return
	case "formal_parameter", "catch_formal_parameter", "enhanced_for_statement", "resource":
		if !nodeutil.IsField(parent, node, "name") {
			break
		}
		// The components of a record are its fields
		if record := parent.Parent().Parent(); record != nil && record.Type() == "record_declaration" {
			if class := b.file.ClassAt(record); class != nil {
				if fields := class.FindField().ByOriginalName(node.Content(b.file.source)); len(fields) > 0 {
					b.bind(node, fields[0])
				}
			}
			return
		}
		b.declare(node, firstType(parent))
		return
	case "lambda_expression":
		if nodeutil.IsField(parent, node, "parameters") {
			b.declare(node, nil)
			return
		}
	case "inferred_parameters":
		b.declare(node, nil)
		return
	case "field_access":
		if nodeutil.IsField(parent, node, "field") {
			b.bindFieldAccess(node, parent.ChildByFieldName("object"))
			return
		}
	case "method_invocation":
		if nodeutil.IsField(parent, node, "name") {
			return
		}
	case "method_reference":
		// Only the expression before the `::` can be a variable
		if parent.NamedChild(0).Type() != node.Type() || nodeutil.SpanOf(parent.NamedChild(0)) != nodeutil.SpanOf(node) {
			return
		}
	case "element_value_pair":
		if nodeutil.IsField(parent, node, "key") {
			return
		}
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration", "record_declaration",
		"method_declaration", "constructor_declaration", "annotation_type_element_declaration",
		"enum_constant", "labeled_statement", "break_statement", "continue_statement",
		"scoped_identifier", "package_declaration", "import_declaration",
		"marker_annotation", "annotation":
		return
	}

	b.bind(node, b.lookup(node.Content(b.file.source)))
}

// lookup finds the innermost variable or field with the given name
func (b *binder) lookup(name string) *Definition {
	for ind := len(b.frames) - 1; ind >= 0; ind-- {
		f := b.frames[ind]
		if f.class != nil {
			if field := f.class.LookupField(name); field != nil {
				return field
			}
			continue
		}
		if variable, ok := f.variables[name]; ok {
			return variable
		}
	}
	return nil
}

func (b *binder) bindFieldAccess(node, object *sitter.Node) {
	class, typeArgs := b.typeOf(object)
	if class == nil {
		return
	}
	field := class.LookupField(node.Content(b.file.source))
	if field == nil {
		return
	}
	if len(typeArgs) > 0 {
		field = field.Instantiate(typeArgs)
	}
	b.bind(node, field)
}

func (b *binder) findClass(name string) *ClassScope {
	if keywords.IsPrimitive(name) {
		return nil
	}
	return b.program.FindClass(b.class(), b.file, name)
}

// typeOf returns the type of an expression, and the type arguments it is
// parameterized with, or nil if the type is not known
func (b *binder) typeOf(expr *sitter.Node) (*ClassScope, []string) {
	if expr == nil {
		return nil, nil
	}
	switch expr.Type() {
	case "this":
		return b.class(), nil
	case "super":
		if class := b.class(); class != nil && class.Super != nil {
			return class.Superclass(), class.Super.Args
		}
	case "identifier":
		if def := b.file.Binding(expr); def != nil {
			return b.typeOfRef(def.Type())
		}
		// Static accesses name the type directly
		return b.findClass(expr.Content(b.file.source)), nil
	case "field_access":
		field := expr.ChildByFieldName("field")
		if field != nil && field.Type() == "this" {
			// Qualified this, ex: Outer.this
			return b.typeOf(expr.ChildByFieldName("object"))
		}
		if field != nil {
			if def := b.file.Binding(field); def != nil {
				return b.typeOfRef(def.Type())
			}
		}
	case "parenthesized_expression":
		return b.typeOf(expr.NamedChild(0))
	case "object_creation_expression", "cast_expression":
		return b.typeOfRef(parseTypeRef(expr.ChildByFieldName("type"), b.file.source))
	}
	return nil, nil
}

func (b *binder) typeOfRef(ref *TypeRef) (*ClassScope, []string) {
	if ref == nil {
		return nil, nil
	}
	return b.findClass(ref.Name), ref.Args
}
