package rename

import (
	"testing"

	"github.com/NickyBoy89/java2go-rename/keywords"
	"github.com/NickyBoy89/java2go-rename/symbol"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var intType = &symbol.TypeRef{Name: "int"}

func newResolver() (*FieldResolver, *symbol.Registry) {
	logger, _ := test.NewNullLogger()
	registry := symbol.NewRegistry()
	return NewFieldResolver(registry, DefaultSuffixes, logger), registry
}

func TestShadowedFieldRenamed(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	baseX := program.NewField(base, "x", intType, keywords.Private)
	derived := program.NewClass(symbol.Class, "Derived", nil)
	derived.Extends(base)
	derivedX := program.NewField(derived, "x", intType, keywords.Private)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(derived))

	require.Equal(t, "x", registry.Name(baseX))
	require.Equal(t, "x_Derived", registry.Name(derivedX))
	require.True(t, resolver.Processed(base))
	require.True(t, resolver.Processed(derived))
}

func TestUncollidingFieldsKeepTheirNames(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	baseX := program.NewField(base, "x", intType, 0)
	program.NewMethod(base, "getX", intType, keywords.Public)
	derived := program.NewClass(symbol.Class, "Derived", nil)
	derived.Extends(base)
	derivedY := program.NewField(derived, "y", intType, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(derived))

	require.Equal(t, "x", registry.Name(baseX))
	require.Equal(t, "y", registry.Name(derivedY))
	require.False(t, registry.Renamed(baseX))
	require.False(t, registry.Renamed(derivedY))
	require.Empty(t, registry.Renames())
}

func TestFieldCollidingWithMethod(t *testing.T) {
	program := symbol.NewProgram()
	class := program.NewClass(symbol.Class, "Counter", nil)
	count := program.NewField(class, "count", intType, keywords.Private)
	other := program.NewField(class, "step", intType, keywords.Private)
	program.NewMethod(class, "count", intType, keywords.Public)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(class))

	require.Equal(t, "count_", registry.Name(count))
	require.Equal(t, "step", registry.Name(other))
}

func TestShadowRenameThenMethodCheck(t *testing.T) {
	// A { int v; }  B extends A { int v; void v() {} }
	program := symbol.NewProgram()
	a := program.NewClass(symbol.Class, "A", nil)
	aV := program.NewField(a, "v", intType, 0)
	b := program.NewClass(symbol.Class, "B", nil)
	b.Extends(a)
	bV := program.NewField(b, "v", intType, 0)
	program.NewMethod(b, "v", nil, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(b))

	require.Equal(t, "v", registry.Name(aV))
	// The method check compares against `v_B`, which is not a method
	require.Equal(t, "v_B", registry.Name(bV))
}

func TestShadowRenameCollidingWithMethod(t *testing.T) {
	program := symbol.NewProgram()
	a := program.NewClass(symbol.Class, "A", nil)
	program.NewField(a, "v", intType, 0)
	b := program.NewClass(symbol.Class, "B", nil)
	b.Extends(a)
	bV := program.NewField(b, "v", intType, 0)
	program.NewMethod(b, "v_B", nil, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(b))

	require.Equal(t, "v_B_", registry.Name(bV))
}

func TestMethodCollisionIsNotRechecked(t *testing.T) {
	program := symbol.NewProgram()
	class := program.NewClass(symbol.Class, "Node", nil)
	next := program.NewField(class, "next", nil, 0)
	program.NewMethod(class, "next", nil, 0)
	program.NewMethod(class, "next_", nil, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(class))

	// `next_` still collides with a method, since the suffix is only applied
	// once
	require.Equal(t, "next_", registry.Name(next))
	require.Len(t, registry.Renames(), 1)
}

func TestStaticFieldsDoNotCollide(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	program.NewField(base, "shared", intType, keywords.Static)
	derived := program.NewClass(symbol.Class, "Derived", nil)
	derived.Extends(base)
	shared := program.NewField(derived, "shared", intType, 0)
	constant := program.NewField(derived, "size", intType, keywords.Static|keywords.Final)
	program.NewMethod(derived, "size", intType, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(derived))

	require.Equal(t, "shared", registry.Name(shared))
	require.Equal(t, "size", registry.Name(constant))
	require.Empty(t, registry.Renames())
}

func TestResolveIsIdempotent(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	program.NewField(base, "x", intType, 0)
	derived := program.NewClass(symbol.Class, "Derived", nil)
	derived.Extends(base)
	x := program.NewField(derived, "x", intType, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(derived))
	first := registry.Renames()

	require.NoError(t, resolver.Resolve(derived))
	require.NoError(t, resolver.Resolve(base))
	require.NoError(t, resolver.Resolve(derived))

	require.Equal(t, first, registry.Renames())
	require.Equal(t, "x_Derived", registry.Name(x))
	require.Equal(t, 2, resolver.Count())
}

func TestSiblingSubclassesAreIndependent(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	baseX := program.NewField(base, "x", intType, 0)
	first := program.NewClass(symbol.Class, "Derived1", nil)
	first.Extends(base)
	firstX := program.NewField(first, "x", intType, 0)
	second := program.NewClass(symbol.Class, "Derived2", nil)
	second.Extends(base)
	secondX := program.NewField(second, "x", intType, 0)

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(second))
	require.NoError(t, resolver.Resolve(first))

	require.Equal(t, "x", registry.Name(baseX))
	require.Equal(t, "x_Derived1", registry.Name(firstX))
	require.Equal(t, "x_Derived2", registry.Name(secondX))
	require.Equal(t, 3, resolver.Count())
}

func TestDistantAncestorIsShadowed(t *testing.T) {
	program := symbol.NewProgram()
	root := program.NewClass(symbol.Class, "Root", nil)
	program.NewField(root, "id", intType, 0)
	middle := program.NewClass(symbol.Class, "Middle", nil)
	middle.Extends(root)
	program.NewField(middle, "name", nil, 0)
	leaf := program.NewClass(symbol.Class, "Leaf", nil)
	leaf.Extends(middle)
	leafID := program.NewField(leaf, "id", intType, 0)
	leafName := program.NewField(leaf, "name", nil, 0)

	resolver, registry := newResolver()

	// Processing the middle of the chain first still lets the leaf see the
	// fields of every ancestor
	require.NoError(t, resolver.Resolve(middle))
	require.False(t, resolver.Processed(leaf))
	require.NoError(t, resolver.Resolve(leaf))

	require.Equal(t, "id_Leaf", registry.Name(leafID))
	require.Equal(t, "name_Leaf", registry.Name(leafName))
}

func TestFieldsListsInheritedFieldsRootFirst(t *testing.T) {
	program := symbol.NewProgram()
	root := program.NewClass(symbol.Class, "Root", nil)
	id := program.NewField(root, "id", intType, 0)
	program.NewField(root, "instances", intType, keywords.Static)
	leaf := program.NewClass(symbol.Class, "Leaf", nil)
	leaf.Extends(root)
	leafID := program.NewField(leaf, "id", intType, 0)
	value := program.NewField(leaf, "value", intType, 0)

	resolver, _ := newResolver()
	fields, err := resolver.Fields(leaf)
	require.NoError(t, err)
	require.Equal(t, []*symbol.Definition{id, leafID, value}, fields)

	// The same fields are returned once the types are processed
	fields, err = resolver.Fields(leaf)
	require.NoError(t, err)
	require.Equal(t, []*symbol.Definition{id, leafID, value}, fields)
}

func TestParameterizedSuperclass(t *testing.T) {
	program := symbol.NewProgram()
	box := program.NewClass(symbol.Class, "Box", nil)
	value := program.NewField(box, "value", &symbol.TypeRef{Name: "T"}, 0)
	stringBox := program.NewClass(symbol.Class, "StringBox", nil)
	stringBox.Extends(box, "String")
	shadow := program.NewField(stringBox, "value", &symbol.TypeRef{Name: "String"}, 0)
	intBox := program.NewClass(symbol.Class, "IntBox", nil)
	intBox.Extends(box, "Integer")

	resolver, registry := newResolver()
	require.NoError(t, resolver.Resolve(stringBox))
	require.NoError(t, resolver.Resolve(intBox))

	// Box is only processed once, no matter how it is parameterized
	require.Equal(t, 3, resolver.Count())
	require.Equal(t, "value", registry.Name(value))
	require.Equal(t, "value_StringBox", registry.Name(shadow))
}

func TestCyclicHierarchyPanics(t *testing.T) {
	program := symbol.NewProgram()
	a := program.NewClass(symbol.Class, "A", nil)
	b := program.NewClass(symbol.Class, "B", nil)
	a.Extends(b)
	b.Extends(a)

	resolver, _ := newResolver()
	require.Panics(t, func() {
		_ = resolver.Resolve(a)
	})
}

func TestRenamesAreLogged(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	program.NewField(base, "x", intType, 0)
	derived := program.NewClass(symbol.Class, "Derived", nil)
	derived.Extends(base)
	program.NewField(derived, "x", intType, 0)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	resolver := NewFieldResolver(symbol.NewRegistry(), DefaultSuffixes, logger)
	require.NoError(t, resolver.Resolve(derived))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	require.Equal(t, log.DebugLevel, entry.Level)
	require.Equal(t, "Derived", entry.Data["type"])
	require.Equal(t, "x", entry.Data["field"])
	require.Equal(t, "x_Derived", entry.Data["to"])
}

func TestCustomSuffixes(t *testing.T) {
	program := symbol.NewProgram()
	base := program.NewClass(symbol.Class, "Base", nil)
	program.NewField(base, "x", intType, 0)
	derived := program.NewClass(symbol.Class, "Derived", nil)
	derived.Extends(base)
	x := program.NewField(derived, "x", intType, 0)
	get := program.NewField(derived, "get", intType, 0)
	program.NewMethod(derived, "get", intType, 0)

	logger, _ := test.NewNullLogger()
	registry := symbol.NewRegistry()
	resolver := NewFieldResolver(registry, Suffixes{
		ShadowSeparator: "__",
		MethodCollision: "Field",
		Argument:        "Param",
	}, logger)
	require.NoError(t, resolver.Resolve(derived))

	require.Equal(t, "x__Derived", registry.Name(x))
	require.Equal(t, "getField", registry.Name(get))
}
