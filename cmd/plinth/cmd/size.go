// File: size.go
// Title: plinth Size Command
// Description: Shows the variable-length wire encoding of a size value.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plinth-go/plinth/core/stream"
)

var sizeCmd = &cobra.Command{
	Use:   "size <number>",
	Short: "Show the variable-length wire encoding of a size",
	Args:  cobra.ExactArgs(1),
	RunE:  runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		printError("invalid number", err)
		return err
	}

	var buf bytes.Buffer
	if err := stream.WriteSize(stream.NewWriter(&buf), value); err != nil {
		printError("encode failed", err)
		return err
	}

	fmt.Printf("value:    %d\n", value)
	fmt.Printf("encoding: % x\n", buf.Bytes())
	fmt.Printf("bytes:    %d\n", buf.Len())
	return nil
}
