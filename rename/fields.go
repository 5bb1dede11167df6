package rename

import (
	"fmt"

	"github.com/NickyBoy89/java2go-rename/symbol"
	log "github.com/sirupsen/logrus"
)

// FieldResolver renames the instance fields of a type that would collide once
// the type is translated: fields that shadow a field of a superclass, and fields
// that share their name with a method of the same type
//
// Every type is processed at most once, no matter how many times it is
// resolved, and its superclasses are always processed before it
type FieldResolver struct {
	registry *symbol.Registry
	suffixes Suffixes
	logger   log.FieldLogger

	// Indexed by TypeID
	processed []bool
	visiting  []bool
}

// NewFieldResolver creates a resolver that records its renames in the registry
func NewFieldResolver(registry *symbol.Registry, suffixes Suffixes, logger log.FieldLogger) *FieldResolver {
	return &FieldResolver{registry: registry, suffixes: suffixes, logger: logger}
}

// Resolve settles the final names of the fields of the type and all of its
// superclasses. Resolving a type more than once has no further effect
func (fr *FieldResolver) Resolve(class *symbol.ClassScope) error {
	var fields []*symbol.Definition
	return fr.collect(class, &fields)
}

// Fields resolves the type, and returns every instance field that is visible
// inside of it: its own, and the ones it inherits, root superclass first
func (fr *FieldResolver) Fields(class *symbol.ClassScope) ([]*symbol.Definition, error) {
	var fields []*symbol.Definition
	if err := fr.collect(class, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Processed reports whether the fields of the type have already been renamed
func (fr *FieldResolver) Processed(class *symbol.ClassScope) bool {
	return int(class.ID) < len(fr.processed) && fr.processed[class.ID]
}

// Count returns the number of types that have been processed
func (fr *FieldResolver) Count() int {
	var count int
	for _, processed := range fr.processed {
		if processed {
			count++
		}
	}
	return count
}

func mark(set []bool, id symbol.TypeID, value bool) []bool {
	for int(id) >= len(set) {
		set = append(set, false)
	}
	set[id] = value
	return set
}

// collect walks down from the root of the type's hierarchy, appending the
// instance fields of every type it passes through to `fields`, and renames the
// fields of any type that was not processed before
func (fr *FieldResolver) collect(class *symbol.ClassScope, fields *[]*symbol.Definition) error {
	if class == nil {
		return nil
	}
	if int(class.ID) < len(fr.visiting) && fr.visiting[class.ID] {
		panic(fmt.Sprintf("cyclic superclass chain through %s", class.QualifiedName()))
	}
	fr.visiting = mark(fr.visiting, class.ID, true)
	defer func() {
		fr.visiting = mark(fr.visiting, class.ID, false)
	}()

	if err := fr.collect(class.Superclass(), fields); err != nil {
		return err
	}

	if !fr.Processed(class) {
		// Marked before renaming, so that nothing reached from here can process
		// the type a second time
		fr.processed = mark(fr.processed, class.ID, true)
		if err := fr.renameFields(class, *fields); err != nil {
			return err
		}
	}

	for _, field := range class.Fields {
		if !field.IsStatic() {
			*fields = append(*fields, field)
		}
	}
	return nil
}

func (fr *FieldResolver) renameFields(class *symbol.ClassScope, inherited []*symbol.Definition) error {
	superFieldNames := make(map[string]struct{}, len(inherited))
	for _, superField := range inherited {
		superFieldNames[superField.OriginalName()] = struct{}{}
	}

	for _, field := range class.Fields {
		if field.IsStatic() {
			continue
		}

		name := field.OriginalName()
		var reasons []string
		if _, shadows := superFieldNames[name]; shadows {
			name += fr.suffixes.ShadowSeparator + class.Name
			reasons = append(reasons, "shadows inherited field")
		}
		// Checked against the name after the shadowing rename, and only once
		if len(class.FindMethod().ByOriginalName(name)) > 0 {
			name += fr.suffixes.MethodCollision
			reasons = append(reasons, "collides with method")
		}

		if name == field.OriginalName() {
			continue
		}
		if err := fr.registry.Rename(field, name); err != nil {
			return fmt.Errorf("renaming field %s.%s: %w", class.Name, field.OriginalName(), err)
		}
		fr.logger.WithFields(log.Fields{
			"type":   class.QualifiedName(),
			"field":  field.OriginalName(),
			"to":     name,
			"reason": reasons,
		}).Debug("Renamed field")
	}
	return nil
}
