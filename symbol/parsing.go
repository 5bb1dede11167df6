package symbol

import (
	"github.com/NickyBoy89/java2go-rename/astutil"
	"github.com/NickyBoy89/java2go-rename/keywords"
	"github.com/NickyBoy89/java2go-rename/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// ExtractDefinitions generates the symbol table for a single source file, and
// adds it to the program
func ExtractDefinitions(program *Program, path string, root *sitter.Node, source []byte) *FileScope {
	nodeutil.AssertTypeIs(root, "program")

	file := &FileScope{
		Path:     path,
		Imports:  make(map[string]string),
		root:     root,
		source:   source,
		types:    make(map[nodeutil.Span]*ClassScope),
		bindings: make(map[nodeutil.Span]*Definition),
	}

	for _, node := range nodeutil.Children(root) {
		switch node.Type() {
		case "package_declaration":
			file.Package = node.NamedChild(0).Content(source)
		case "import_declaration":
			imported := node.NamedChild(0)
			// Wildcard and static imports do not name a single type
			if imported.Type() != "scoped_identifier" || node.NamedChildCount() > 1 || isStaticImport(node) {
				continue
			}
			file.Imports[imported.ChildByFieldName("name").Content(source)] = imported.Content(source)
		}
	}

	// Types have to be declared after the package, so that they inherit it
	for _, node := range nodeutil.Children(root) {
		if isTypeDeclaration(node) {
			file.Classes = append(file.Classes, parseClassScope(program, file, node, nil))
		}
	}

	program.AddFile(file)
	return file
}

func isStaticImport(node *sitter.Node) bool {
	for _, child := range nodeutil.UnnamedChildren(node) {
		if child.Type() == "static" {
			return true
		}
	}
	return false
}

func isTypeDeclaration(node *sitter.Node) bool {
	switch node.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration", "record_declaration":
		return true
	}
	return false
}

func parseTypeRef(node *sitter.Node, source []byte) *TypeRef {
	if node == nil {
		return nil
	}
	name := astutil.TypeName(node, source)
	if name == "void" {
		return nil
	}
	return &TypeRef{Name: name, Args: astutil.TypeArguments(node, source)}
}

func parseClassScope(program *Program, file *FileScope, node *sitter.Node, outer *ClassScope) *ClassScope {
	var kind TypeKind
	switch node.Type() {
	case "class_declaration":
		kind = Class
	case "interface_declaration":
		kind = Interface
	case "enum_declaration":
		kind = Enum
	case "annotation_type_declaration":
		kind = Annotation
	case "record_declaration":
		kind = Record
	}

	class := program.NewClass(kind, nodeutil.AssertFieldExists(node, "name").Content(file.source), outer)
	class.Package = file.Package
	class.File = file
	class.Span = nodeutil.SpanOf(node)
	class.Line = nodeutil.Line(node)
	file.types[class.Span] = class

	if superclass := node.ChildByFieldName("superclass"); superclass != nil {
		nodeutil.AssertTypeIs(superclass, "superclass")
		class.Super = parseTypeRef(superclass.NamedChild(0), file.source)
	}

	// Every component of a record is a private final field
	if parameters := node.ChildByFieldName("parameters"); parameters != nil && kind == Record {
		for _, component := range nodeutil.Children(parameters) {
			name := component.ChildByFieldName("name")
			if name == nil {
				continue
			}
			field := program.NewField(class, name.Content(file.source), parseTypeRef(component.ChildByFieldName("type"), file.source), keywords.Private|keywords.Final)
			program.SetLine(field, nodeutil.Line(name))
		}
	}

	parseMembers(program, file, nodeutil.AssertFieldExists(node, "body"), class)
	return class
}

// parseMembers goes through everything contained in a type's body, declaring
// its fields and methods, as well as any nested, local, or anonymous classes
func parseMembers(program *Program, file *FileScope, node *sitter.Node, class *ClassScope) {
	for _, child := range nodeutil.Children(node) {
		parseMember(program, file, child, class)
	}
}

func parseMember(program *Program, file *FileScope, node *sitter.Node, class *ClassScope) {
	switch node.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration", "record_declaration":
		parseClassScope(program, file, node, class)
	case "field_declaration", "constant_declaration":
		mods := parseModifiers(node)
		// Fields in interfaces and annotations are always constants
		if class.Kind == Interface || class.Kind == Annotation {
			mods |= keywords.Static | keywords.Final
		}
		fieldType := parseTypeRef(node.ChildByFieldName("type"), file.source)
		for _, declarator := range nodeutil.ChildrenByFieldName(node, "declarator") {
			name := nodeutil.AssertFieldExists(declarator, "name")
			field := program.NewField(class, name.Content(file.source), fieldType, mods)
			program.SetLine(field, nodeutil.Line(name))
		}
		// Initializers may contain anonymous classes
		parseMembers(program, file, node, class)
	case "method_declaration", "annotation_type_element_declaration":
		name := nodeutil.AssertFieldExists(node, "name")
		method := program.NewMethod(class, name.Content(file.source), parseTypeRef(node.ChildByFieldName("type"), file.source), parseModifiers(node))
		program.SetLine(method, nodeutil.Line(name))
		parseMembers(program, file, node, class)
	case "object_creation_expression", "enum_constant":
		// The arguments come before the body, and are part of the outer type
		var body *sitter.Node
		for _, child := range nodeutil.Children(node) {
			if child.Type() == "class_body" {
				body = child
				continue
			}
			parseMember(program, file, child, class)
		}
		if body == nil {
			return
		}
		anonymous := program.NewAnonymousClass(class)
		if node.Type() == "enum_constant" {
			anonymous.Extends(class)
		} else {
			anonymous.Super = parseTypeRef(node.ChildByFieldName("type"), file.source)
		}
		anonymous.Span = nodeutil.SpanOf(body)
		anonymous.Line = nodeutil.Line(body)
		file.types[anonymous.Span] = anonymous
		parseMembers(program, file, body, anonymous)
	default:
		parseMembers(program, file, node, class)
	}
}
