// File: tokens.go
// Title: plinth Tokens Command
// Description: Splits and tokenizes a raw command line and prints the
//              resulting token stream.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plinth-go/plinth/core/cmdline"
)

var tokensWindows bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <command-line>",
	Short: "Tokenize a raw command line",
	Long: `Splits a single command-line string on unquoted whitespace and
tokenizes the pieces, printing each token's kind, name, and bound
value. --windows additionally recognizes /opt style options.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensWindows, "windows", false, "recognize /opt style options")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	pieces, err := cmdline.SplitCommandLine(args[0])
	if err != nil {
		printError("split failed", err)
		return err
	}

	var tokens []cmdline.Token
	if tokensWindows {
		tokens, err = cmdline.TokenizeWindows(pieces)
	} else {
		tokens, err = cmdline.TokenizePosix(pieces)
	}
	if err != nil {
		printError("tokenize failed", err)
		return err
	}

	for _, tok := range tokens {
		if tok.HasValue {
			fmt.Printf("%-14s  %-16s = %s\n", tok.Kind, tok.Text, tok.Value)
			continue
		}
		fmt.Printf("%-14s  %s\n", tok.Kind, tok.Text)
	}
	return nil
}
