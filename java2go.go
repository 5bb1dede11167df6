package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/NickyBoy89/java2go-rename/config"
	"github.com/NickyBoy89/java2go-rename/naming"
	"github.com/NickyBoy89/java2go-rename/rename"
	"github.com/NickyBoy89/java2go-rename/report"
	"github.com/NickyBoy89/java2go-rename/symbol"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	format     string
	spelling   string
	output     string
	dotPath    string
	dump       bool
	dryRun     bool
	verbose    bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "java2go-rename [flags] <files or directories>",
		Short: "Rename Java fields and variables that would collide once translated into Go",
		Long: `Parses Java source files and renames every identifier that can not be
translated into Go as-is: fields that shadow an inherited field, fields that
share a name with a method of their type, and local variables or parameters
that share a name with a visible field.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.format, "format", "f", "", "Report format: text, json, or yaml")
	flags.StringVar(&opts.spelling, "spelling", "", "How field names are spelled when compared to variables: go or verbatim")
	flags.StringVarP(&opts.output, "output", "o", "", "File to write the report to, defaults to stdout")
	flags.StringVar(&opts.dotPath, "dot", "", "Write the type hierarchy as a Graphviz file")
	flags.BoolVar(&opts.dump, "dump", false, "Print the symbol table to stderr")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Only parse and bind the files (check if parsing succeeds)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Additional debug info")

	return cmd
}

// loadConfig reads the config file, and applies the flags on top of it
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if cmd.Flags().Changed("spelling") {
		cfg.Spelling = opts.spelling
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	return nil
}

// collectSources expands the arguments into the Java files that they name,
// walking through any directories
func collectSources(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if filepath.Ext(arg) != ".java" {
				log.Debugf("Skipping file %v", arg)
				continue // Skips all non-java files
			}
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.HasSuffix(path, ".java") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}

	paths, err := collectSources(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no java files found in %v", args)
	}

	program, err := LoadProgram(cmd.Context(), paths)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"files": len(program.Files),
		"types": len(program.Types),
	}).Info("Parsed sources")

	if opts.dump {
		fmt.Fprintln(cmd.ErrOrStderr(), repr.String(Summarize(program), repr.Indent("  ")))
	}
	if opts.dryRun {
		return nil
	}

	spelling, err := naming.ByName(cfg.Spelling)
	if err != nil {
		return err
	}
	registry := symbol.NewRegistry()
	pass := rename.New(registry,
		rename.WithSuffixes(cfg.RenameSuffixes()),
		rename.WithSpelling(spelling),
	)
	if err := ResolveProgram(program, pass); err != nil {
		return err
	}

	stats := pass.Stats()
	log.WithFields(log.Fields{
		"processed": stats.Processed,
		"renames":   stats.Renames,
	}).Info("Renamed identifiers")

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer file.Close()
		out = file
	}
	if err := report.New(program, registry).Write(out, report.Format(cfg.Format)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if opts.dotPath != "" {
		file, err := os.Create(opts.dotPath)
		if err != nil {
			return fmt.Errorf("failed to open dot file: %w", err)
		}
		defer file.Close()
		if _, err := HierarchyGraph(program, registry).WriteTo(file); err != nil {
			return fmt.Errorf("failed to write dot file: %w", err)
		}
	}
	return nil
}
