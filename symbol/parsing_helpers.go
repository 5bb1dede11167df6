package symbol

import (
	"unicode"
	"unicode/utf8"

	"github.com/NickyBoy89/java2go-rename/keywords"
	"github.com/NickyBoy89/java2go-rename/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// Uppercase uppercases the first character of the given string
func Uppercase(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}

// Lowercase lowercases the first character of the given string
func Lowercase(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToLower(first)) + name[size:]
}

// HandleExportStatus is a convenience method for renaming members that may be
// either public or private, and need to be renamed
func HandleExportStatus(exported bool, name string) string {
	if exported {
		return Uppercase(name)
	}
	return Lowercase(name)
}

// parseModifiers collects the modifiers of a declaration, from its `modifiers`
// child if it has one
func parseModifiers(node *sitter.Node) keywords.Modifiers {
	var mods keywords.Modifiers
	for _, child := range nodeutil.Children(node) {
		if child.Type() != "modifiers" {
			continue
		}
		for _, modifier := range nodeutil.UnnamedChildren(child) {
			if mod, ok := keywords.ParseModifier(modifier.Type()); ok {
				mods |= mod
			}
		}
	}
	return mods
}
