// Package report lists the renames that the rename phase applied to a program
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/NickyBoy89/java2go-rename/symbol"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Format is an output format for a report
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Entry is a single renamed field or variable
type Entry struct {
	Kind string `json:"kind" yaml:"kind"`
	// The type that declares the field, or that encloses the variable
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Original string `json:"original" yaml:"original"`
	Renamed  string `json:"renamed" yaml:"renamed"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
}

type Report struct {
	Files   int     `json:"files" yaml:"files"`
	Types   int     `json:"types" yaml:"types"`
	Renames []Entry `json:"renames" yaml:"renames"`
}

// New builds the report for a program, sorted by file and line
func New(program *symbol.Program, registry *symbol.Registry) *Report {
	report := &Report{
		Files:   len(program.Files),
		Types:   len(program.Types),
		Renames: make([]Entry, 0),
	}

	for _, rename := range registry.Renames() {
		def := rename.Definition
		entry := Entry{
			Kind:     def.Kind().String(),
			Original: rename.From,
			Renamed:  rename.To,
			File:     def.Position().File,
			Line:     def.Position().Line,
		}
		if owner := def.Owner(); owner != nil {
			entry.Type = owner.QualifiedName()
		}
		report.Renames = append(report.Renames, entry)
	}

	slices.SortStableFunc(report.Renames, func(a, b Entry) bool {
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})
	return report
}

// Write writes the report to the writer in the given format
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case Text:
		return r.writeText(w)
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}

func (r *Report) writeText(w io.Writer) error {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "KIND\tTYPE\tORIGINAL\tRENAMED\tPOSITION")
	for _, entry := range r.Renames {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s:%d\n", entry.Kind, entry.Type, entry.Original, entry.Renamed, entry.File, entry.Line)
	}
	fmt.Fprintf(table, "\n%d renames in %d types across %d files\n", len(r.Renames), r.Types, r.Files)
	return table.Flush()
}
