// Package naming converts the names of Java members into the spelling they
// have in the generated Go code
package naming

import (
	"fmt"

	"github.com/NickyBoy89/java2go-rename/symbol"
)

// Spelling converts the current name of a field into the name that code
// outside of the type sees it as
type Spelling func(field *symbol.Definition, name string) string

// Go spells fields the way they appear in generated Go code: public fields are
// exported, and every other field is unexported
func Go(field *symbol.Definition, name string) string {
	return symbol.HandleExportStatus(field.IsPublic(), name)
}

// Verbatim leaves the name as it is
func Verbatim(_ *symbol.Definition, name string) string {
	return name
}

var spellings = map[string]Spelling{
	"go":       Go,
	"verbatim": Verbatim,
}

// ByName returns the spelling with the given name, either "go" or "verbatim"
func ByName(name string) (Spelling, error) {
	spelling, ok := spellings[name]
	if !ok {
		return nil, fmt.Errorf("unknown spelling %q", name)
	}
	return spelling, nil
}
