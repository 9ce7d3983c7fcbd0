// File: find.go
// Title: plinth Find Command
// Description: Locates a file through a search path list, with optional
//              wildcard matching.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plinth-go/plinth/core/path"
	"github.com/plinth-go/plinth/core/platform"
	"github.com/plinth-go/plinth/core/text"
)

var (
	findListSource string
	findPattern    bool
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Locate a file through a search path list",
	Long: `Searches the directories of a search path list front to back and
prints where the named file was found. The list comes from --path-list,
the find.path_list config key, or the PATH environment variable, in
that order. Directories
listed twice are probed once; the earlier mention wins.

With --pattern the name is a wildcard expression and every match from
the first directory containing any is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&findListSource, "path-list", "", "search list (default: $PATH)")
	findCmd.Flags().BoolVar(&findPattern, "pattern", false, "treat the name as a wildcard pattern")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	source := findListSource
	if source == "" {
		source = cfg.GetString("find.path_list")
	}
	if source == "" {
		source = os.Getenv("PATH")
	}
	src, err := text.New(source)
	if err != nil {
		printError("invalid search list", err)
		return err
	}

	schema := path.Native()
	list, err := path.ParseSearchPathList(src, schema)
	if err != nil {
		printError("search list parse failed", err)
		return err
	}
	logger.Debug("searching", map[string]interface{}{
		"dirs": len(list.Dirs()),
		"name": args[0],
	})

	env := platform.Host()
	if findPattern {
		matches, ok, err := list.TryFindMatch(args[0], env)
		if err != nil {
			printError("search failed", err)
			return err
		}
		if !ok {
			fmt.Printf("%s: not found\n", args[0])
			return nil
		}
		for _, m := range matches {
			rendered, err := m.Render(path.UsageDisplay, env)
			if err != nil {
				continue
			}
			fmt.Println(rendered)
		}
		return nil
	}

	found, ok, err := list.TryFind(args[0], env)
	if err != nil {
		printError("search failed", err)
		return err
	}
	if !ok {
		fmt.Printf("%s: not found\n", args[0])
		return nil
	}
	rendered, err := found.Render(path.UsageDisplay, env)
	if err != nil {
		printError("render failed", err)
		return err
	}
	fmt.Println(rendered)
	return nil
}
