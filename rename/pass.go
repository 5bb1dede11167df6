// Package rename gives new names to the fields, local variables, and parameters
// of a Java program that would collide with each other once the program is
// translated into Go.
//
// Three situations are handled:
//   - a field that shadows a field of a superclass becomes `name_Type`
//   - a field with the same name as a method of its type gets a trailing `_`
//   - a local variable or parameter with the same name as a visible field
//     becomes `nameArg`
//
// Variables are compared against fields in the spelling the fields will have
// after translation. With naming.Go, a public field `x` is spelled `X`, so a
// parameter `x` next to it is left alone. naming.Verbatim compares the declared
// names instead.
//
// A Pass is driven by a traversal of the program that calls Enter for every
// type declaration, and Reference for every identifier.
package rename

import (
	"github.com/NickyBoy89/java2go-rename/naming"
	"github.com/NickyBoy89/java2go-rename/symbol"
	log "github.com/sirupsen/logrus"
)

// Suffixes are the strings that are appended to a name to rename it
type Suffixes struct {
	// Placed between a shadowing field's name and its type's name
	ShadowSeparator string
	// Appended to a field that collides with a method
	MethodCollision string
	// Appended to a variable that collides with a field
	Argument string
}

// DefaultSuffixes produce `x_Derived`, `x_`, and `xArg`
var DefaultSuffixes = Suffixes{
	ShadowSeparator: "_",
	MethodCollision: "_",
	Argument:        "Arg",
}

// Stats counts the work that a pass has done
type Stats struct {
	Pushes    int
	Pops      int
	Processed int
	Renames   int
}

// Pass is a single run of the rename phase over a program
type Pass struct {
	registry   *symbol.Registry
	suffixes   Suffixes
	spelling   naming.Spelling
	logger     log.FieldLogger
	resolver   *FieldResolver
	stack      *ScopeStack
	classifier *Classifier
}

// An Option configures a Pass
type Option func(*Pass)

func WithSuffixes(suffixes Suffixes) Option {
	return func(p *Pass) {
		p.suffixes = suffixes
	}
}

// WithSpelling sets how field names are spelled when they are compared against
// variable names. Defaults to naming.Go
func WithSpelling(spelling naming.Spelling) Option {
	return func(p *Pass) {
		p.spelling = spelling
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(p *Pass) {
		p.logger = logger
	}
}

// New creates a pass that records its renames in the registry
func New(registry *symbol.Registry, opts ...Option) *Pass {
	p := &Pass{
		registry: registry,
		suffixes: DefaultSuffixes,
		spelling: naming.Go,
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.resolver = NewFieldResolver(registry, p.suffixes, p.logger)
	p.stack = NewScopeStack(p.resolver, registry, p.spelling)
	p.classifier = NewClassifier(p.resolver, p.stack, registry, p.suffixes.Argument, p.logger)
	return p
}

// Enter opens the type declaration, and returns the function that closes it
// again. The release function should be deferred, so that the declaration is
// closed on every path out of the traversal
func (p *Pass) Enter(class *symbol.ClassScope) (release func(), err error) {
	if err := p.stack.Push(class); err != nil {
		return nil, err
	}
	var released bool
	return func() {
		if !released {
			released = true
			p.stack.Pop()
		}
	}, nil
}

// Reference handles an identifier that refers to the given definition, or to
// nothing if the definition is nil
func (p *Pass) Reference(def *symbol.Definition) error {
	return p.classifier.Classify(def)
}

// Resolve settles the names of the fields of a type and its superclasses
func (p *Pass) Resolve(class *symbol.ClassScope) error {
	return p.resolver.Resolve(class)
}

// VisibleFields returns the spelled names of the fields visible in the
// innermost open type declaration
func (p *Pass) VisibleFields() (FieldSet, bool) {
	return p.stack.Top()
}

// Depth is the number of type declarations that are currently open
func (p *Pass) Depth() int {
	return p.stack.Depth()
}

func (p *Pass) Stats() Stats {
	return Stats{
		Pushes:    p.stack.pushes,
		Pops:      p.stack.pops,
		Processed: p.resolver.Count(),
		Renames:   len(p.registry.Renames()),
	}
}
