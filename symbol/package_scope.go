package symbol

// PackageScope represents a single package, which can contain one or more files
type PackageScope struct {
	Name  string
	Files []*FileScope
}

// AddSymbolsFromFile adds the definitions in a file to the package
func (ps *PackageScope) AddSymbolsFromFile(symbols *FileScope) {
	ps.Files = append(ps.Files, symbols)
}

// FindClass searches for a top-level class in the given package and returns a
// scope for it, or nil if none was found
func (ps *PackageScope) FindClass(name string) *ClassScope {
	for _, fileScope := range ps.Files {
		for _, class := range fileScope.Classes {
			if class.Name == name {
				return class
			}
		}
	}
	return nil
}
