package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/check"
	"github.com/velalang/velac/internal/config"
	"github.com/velalang/velac/internal/diag"
	"github.com/velalang/velac/internal/importresolve"
	"github.com/velalang/velac/internal/symbol"
)

// projectConfig is the optional velac.yaml project file (SPEC_FULL.md
// AMBIENT STACK: configuration via gopkg.in/yaml.v3): int-size/ptr-size
// overrides layered on top of the command's flag defaults. The str alias
// cannot be overridden from this file.
type projectConfig struct {
	IntSize int `yaml:"intSize"`
	PtrSize int `yaml:"ptrSize"`
}

// ParseFile turns one discovered source file into a checked unit's raw
// AST. Producing this AST (lexing/parsing) is out of the core's scope
// (spec.md §1); velac ships no front-end of its own, so this is left nil
// and `velac check` reports a clear error rather than silently checking
// nothing. A downstream build that embeds a real Vela front-end sets this
// before calling newCheckCmd's RunE (or forks the command to call
// check.Checker.Run directly with its own units).
var ParseFile func(path string) (*ast.Unit, error)

func newCheckCmd() *cobra.Command {
	var (
		trace      bool
		intSize    int
		ptrSize    int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "check <package-dir>",
		Short: "Type-check a Vela package directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			conf := config.New(intSize, ptrSize)
			conf.Debug = trace
			if err := applyProjectConfig(conf, configPath); err != nil {
				return err
			}

			paths, err := importresolve.Discover(dir, importresolve.DefaultPattern)
			if err != nil {
				return fmt.Errorf("velac: discovering units in %s: %w", dir, err)
			}
			if len(paths) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "velac: no .vl files found in %s\n", dir)
				return nil
			}
			if ParseFile == nil {
				return fmt.Errorf("velac: no front-end parser is wired into this build (spec.md §1 Non-goals); see cmd/velac/check.go's ParseFile")
			}

			units := make([]*ast.Unit, 0, len(paths))
			for _, p := range paths {
				u, err := ParseFile(p)
				if err != nil {
					return fmt.Errorf("velac: parsing %s: %w", p, err)
				}
				units = append(units, u)
			}

			exitCode := 0
			reporter := diag.NewReporter(func(d diag.Diagnostic) {
				if d.Kind == diag.KindError {
					exitCode = 1
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s: %s\n",
					dir, d.Origin.Line(), d.Origin.Col(), d.Kind, d.Message)
			})

			syms := symbol.NewTable()
			files := ast.NewFileTable()
			checker := check.New(conf, syms, files, reporter)
			if err := checker.Run(units); err != nil {
				return fmt.Errorf("velac: %w", err)
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "enable checker debug tracing")
	cmd.Flags().IntVar(&intSize, "int-size", 8, "native int width in bytes")
	cmd.Flags().IntVar(&ptrSize, "ptr-size", 8, "pointer width in bytes")
	cmd.Flags().StringVar(&configPath, "config", "velac.yaml", "project config file (optional)")
	return cmd
}

// applyProjectConfig layers an optional velac.yaml over conf's flag
// defaults; a missing file is not an error.
func applyProjectConfig(conf *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("velac: reading %s: %w", path, err)
	}
	var pc projectConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return fmt.Errorf("velac: parsing %s: %w", path, err)
	}
	if pc.IntSize != 0 {
		conf.IntSize = pc.IntSize
	}
	if pc.PtrSize != 0 {
		conf.PtrSize = pc.PtrSize
	}
	return nil
}
