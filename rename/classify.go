package rename

import (
	"errors"
	"fmt"

	"github.com/NickyBoy89/java2go-rename/symbol"
	log "github.com/sirupsen/logrus"
)

// ErrNoEnclosingType is returned when a local variable is referenced while no
// type declaration is open, which means the traversal is broken
var ErrNoEnclosingType = errors.New("variable referenced outside of any type declaration")

// Classifier decides what to do with each reference that the traversal finds
type Classifier struct {
	resolver *FieldResolver
	stack    *ScopeStack
	registry *symbol.Registry
	suffix   string
	logger   log.FieldLogger
}

func NewClassifier(resolver *FieldResolver, stack *ScopeStack, registry *symbol.Registry, argumentSuffix string, logger log.FieldLogger) *Classifier {
	return &Classifier{
		resolver: resolver,
		stack:    stack,
		registry: registry,
		suffix:   argumentSuffix,
		logger:   logger,
	}
}

// Classify handles a reference to the given definition, which is nil when the
// reference could not be resolved
//
// A reference to a field makes sure that the fields of the declaring type have
// been renamed. A reference to a local variable or parameter renames the
// variable if a field of the same name is visible
func (c *Classifier) Classify(def *symbol.Definition) error {
	if def == nil {
		return nil
	}
	def = def.Declaration()

	switch def.Kind() {
	case symbol.Field:
		return c.resolver.Resolve(def.Owner())
	case symbol.Variable:
		fieldNames, ok := c.stack.Top()
		if !ok {
			return fmt.Errorf("%w: %s at %v", ErrNoEnclosingType, def.OriginalName(), def.Position())
		}
		// The declared name is the same for every reference, so the outcome
		// does not depend on which reference is seen first
		name := def.OriginalName()
		if !fieldNames.Contains(name) || c.registry.Renamed(def) {
			return nil
		}
		if err := c.registry.Rename(def, name+c.suffix); err != nil {
			return fmt.Errorf("renaming variable %s: %w", name, err)
		}
		c.logger.WithFields(log.Fields{
			"variable": name,
			"to":       name + c.suffix,
			"position": def.Position().String(),
		}).Debug("Renamed variable")
	}
	return nil
}
