package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NickyBoy89/java2go-rename/nodeutil"
	"github.com/NickyBoy89/java2go-rename/symbol"
	log "github.com/sirupsen/logrus"
)

// Source is the contents of a single Java file
type Source struct {
	Path    string
	Content []byte
}

// LoadProgram reads and parses every file, and builds the program's symbol
// table out of them
func LoadProgram(ctx context.Context, paths []string) (*symbol.Program, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, Source{Path: path, Content: content})
	}
	return LoadSources(ctx, sources)
}

// LoadSources parses the sources, extracts their definitions, links every type
// to its superclass, and binds every identifier to its definition
func LoadSources(ctx context.Context, sources []Source) (*symbol.Program, error) {
	program := symbol.NewProgram()
	for _, source := range sources {
		tree, err := nodeutil.ParseJava(ctx, source.Content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source.Path, err)
		}

		root := tree.RootNode()
		if root.HasError() {
			log.WithFields(log.Fields{
				"file": source.Path,
			}).Warn("Source contains syntax errors, some declarations may be skipped")
		}

		file := symbol.ExtractDefinitions(program, source.Path, root, source.Content)
		log.WithFields(log.Fields{
			"file":    source.Path,
			"package": file.Package,
			"types":   len(file.Classes),
		}).Debug("Extracted definitions")
	}

	if err := program.Link(); err != nil {
		return nil, err
	}

	for _, file := range program.Files {
		symbol.Bind(program, file)
	}
	return program, nil
}
