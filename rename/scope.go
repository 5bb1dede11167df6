package rename

import (
	"github.com/NickyBoy89/java2go-rename/naming"
	"github.com/NickyBoy89/java2go-rename/symbol"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FieldSet is the set of field names that are visible inside a type, spelled
// the way the generated code spells them
type FieldSet map[string]struct{}

// Contains reports whether the name is in the set
func (fs FieldSet) Contains(name string) bool {
	_, ok := fs[name]
	return ok
}

// Names returns the names in the set, sorted
func (fs FieldSet) Names() []string {
	names := maps.Keys(fs)
	slices.Sort(names)
	return names
}

// ScopeStack holds one FieldSet for every type declaration that the traversal
// is currently inside of, the innermost on top
type ScopeStack struct {
	resolver *FieldResolver
	registry *symbol.Registry
	spelling naming.Spelling

	frames []FieldSet
	pushes int
	pops   int
}

func NewScopeStack(resolver *FieldResolver, registry *symbol.Registry, spelling naming.Spelling) *ScopeStack {
	return &ScopeStack{resolver: resolver, registry: registry, spelling: spelling}
}

// Push resolves the fields of the type, and pushes the names of every field
// visible inside of it
func (s *ScopeStack) Push(class *symbol.ClassScope) error {
	fields, err := s.resolver.Fields(class)
	if err != nil {
		return err
	}
	names := make(FieldSet, len(fields))
	for _, field := range fields {
		names[s.spelling(field, s.registry.Name(field))] = struct{}{}
	}
	s.frames = append(s.frames, names)
	s.pushes++
	return nil
}

// Pop removes the innermost set. Popping an empty stack is a bug in the
// traversal, and panics
func (s *ScopeStack) Pop() {
	if len(s.frames) == 0 {
		panic("rename: pop from an empty scope stack")
	}
	s.frames = s.frames[:len(s.frames)-1]
	s.pops++
}

// Top returns the innermost set, and false if the stack is empty
func (s *ScopeStack) Top() (FieldSet, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

// Depth is the number of type declarations that are currently open
func (s *ScopeStack) Depth() int {
	return len(s.frames)
}
