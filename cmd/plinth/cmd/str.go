// File: str.go
// Title: plinth String Command
// Description: Inspects a string: lengths in every encoding unit,
//              content hash, and ASCII case folding.
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

	"github.com/plinth-go/plinth/core/text"
)

var strCmd = &cobra.Command{
	Use:   "str <text>",
	Short: "Show string lengths, hash, and case folding",
	Args:  cobra.ExactArgs(1),
	RunE:  runStr,
}

func init() {
	rootCmd.AddCommand(strCmd)
}

func runStr(cmd *cobra.Command, args []string) error {
	s, err := text.New(args[0])
	if err != nil {
		printError("invalid input", err)
		return err
	}
	logger.Debug("inspecting string", map[string]interface{}{"bytes": s.Len()})

	fmt.Printf("source:      %s\n", s)
	fmt.Printf("utf-8 bytes: %d\n", s.Len())
	fmt.Printf("utf-16 len:  %d\n", s.LenUTF16())
	fmt.Printf("codepoints:  %d\n", s.LenUTF32())
	fmt.Printf("print len:   %d\n", s.PrintLen())
	fmt.Printf("hash:        %016x\n", s.Hash())
	fmt.Printf("upper:       %s\n", s.ToUpper())
	fmt.Printf("lower:       %s\n", s.ToLower())
	return nil
}
