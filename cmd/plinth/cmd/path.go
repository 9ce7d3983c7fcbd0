// File: path.go
// Title: plinth Path Command
// Description: Parses a path under a chosen schema and prints its parts,
//              canonical form, and renderings.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plinth-go/plinth/core/path"
	"github.com/plinth-go/plinth/core/platform"
	"github.com/plinth-go/plinth/core/text"
)

var (
	pathSchemaName string
	pathCanonical  bool
	pathAbsolute   bool
	pathRelativeTo string
)

var pathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Parse and transform a file system path",
	Long: `Parses a path under the Windows or POSIX schema and prints its
root classification, elements, file name parts, and renderings.

With --canonical the path is canonicalized first; with --absolute it is
anchored at the working directory; --relative-to re-expresses it
relative to the given base path.`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func init() {
	pathCmd.Flags().StringVar(&pathSchemaName, "schema", "native", "path schema: windows, posix, or native")
	pathCmd.Flags().BoolVar(&pathCanonical, "canonical", false, "canonicalize before printing")
	pathCmd.Flags().BoolVar(&pathAbsolute, "absolute", false, "anchor at the working directory")
	pathCmd.Flags().StringVar(&pathRelativeTo, "relative-to", "", "re-express relative to this base path")
	rootCmd.AddCommand(pathCmd)
}

func schemaByName(name string) (path.Schema, error) {
	lower := strings.ToLower(name)
	if lower == "native" {
		lower = ""
	}
	schema, ok := path.ByName(lower)
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return schema, nil
}

func runPath(cmd *cobra.Command, args []string) error {
	schema, err := schemaByName(pathSchemaName)
	if err != nil {
		printError("invalid schema", err)
		return err
	}

	src, err := text.New(args[0])
	if err != nil {
		printError("invalid input", err)
		return err
	}
	p, err := path.Parse(src, schema)
	if err != nil {
		printError("parse failed", err)
		return err
	}

	env := platform.Host()
	if pathCanonical {
		if p, err = p.MakeCanonical(); err != nil {
			printError("canonicalize failed", err)
			return err
		}
	}
	if pathAbsolute {
		if p, err = p.MakeAbsolute(env); err != nil {
			printError("make absolute failed", err)
			return err
		}
	}
	if pathRelativeTo != "" {
		baseSrc, err := text.New(pathRelativeTo)
		if err != nil {
			printError("invalid base path", err)
			return err
		}
		base, err := path.Parse(baseSrc, schema)
		if err != nil {
			printError("base parse failed", err)
			return err
		}
		if p, err = p.MakeRelative(base); err != nil {
			printError("make relative failed", err)
			return err
		}
	}

	root := p.Root()
	fmt.Printf("root kind:   %s\n", root.Kind)
	if root.Text != "" {
		fmt.Printf("root text:   %s\n", root.Text)
	}
	fmt.Printf("elements:    %s\n", strings.Join(p.Elements(), " | "))
	if name := p.FileName(); name != "" {
		fmt.Printf("file name:   %s\n", name)
		fmt.Printf("base name:   %s\n", p.FileBaseName())
		if ext := p.FileExtension(); ext != "" {
			fmt.Printf("extension:   %s\n", ext)
		}
		if last := p.LastExtension(); last != "" {
			fmt.Printf("last ext:    %s\n", last)
		}
	}

	for _, usage := range []path.Usage{path.UsageDisplay, path.UsageShell, path.UsageKernel} {
		rendered, err := p.Render(usage, env)
		if err != nil {
			logger.Debug("render failed", map[string]interface{}{
				"usage": usage.String(),
				"error": err.Error(),
			})
			fmt.Printf("%-8s     <unrenderable: %v>\n", usage.String()+":", err)
			continue
		}
		fmt.Printf("%-8s     %s\n", usage.String()+":", rendered)
	}
	return nil
}
