// File: uri.go
// Title: plinth URI Command
// Description: Parses a URI, prints its components and query parameters,
//              and re-renders it in the requested usage.
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

	"github.com/plinth-go/plinth/core/text"
	"github.com/plinth-go/plinth/core/uri"
)

var uriUsageName string

var uriCmd = &cobra.Command{
	Use:   "uri <uri>",
	Short: "Parse and re-render a URI",
	Long: `Parses a URI into scheme, authority, path, query, and fragment and
prints each component. --usage selects the rendering: as-specified
repeats the input byte for byte, escaped percent-encodes everything a
component cannot carry raw, display decodes escapes for human reading.`,
	Args: cobra.ExactArgs(1),
	RunE: runUri,
}

func init() {
	uriCmd.Flags().StringVar(&uriUsageName, "usage", "as-specified", "rendering: as-specified, escaped, or display")
	rootCmd.AddCommand(uriCmd)
}

func usageByName(name string) (uri.Usage, error) {
	switch strings.ToLower(name) {
	case "as-specified", "":
		return uri.UsageAsSpecified, nil
	case "escaped":
		return uri.UsageEscaped, nil
	case "display":
		return uri.UsageDisplay, nil
	default:
		return uri.UsageAsSpecified, fmt.Errorf("unknown usage %q", name)
	}
}

func runUri(cmd *cobra.Command, args []string) error {
	usage, err := usageByName(uriUsageName)
	if err != nil {
		printError("invalid usage", err)
		return err
	}

	src, err := text.New(args[0])
	if err != nil {
		printError("invalid input", err)
		return err
	}
	u, err := uri.Parse(src)
	if err != nil {
		printError("parse failed", err)
		return err
	}
	logger.Debug("parsed uri", map[string]interface{}{"scheme": u.Scheme()})

	if s := u.Scheme(); s != "" {
		fmt.Printf("scheme:    %s\n", s)
	}
	if u.HasAuthority() {
		if ui := u.UserInfo(); ui != "" {
			fmt.Printf("user info: %s\n", ui)
		}
		fmt.Printf("host:      %s\n", u.Host())
		if p := u.Port(); p >= 0 {
			fmt.Printf("port:      %d\n", p)
		}
	}
	if p := u.Path(); p != "" {
		fmt.Printf("path:      %s\n", p)
		if elems := u.PathElements(); len(elems) > 0 {
			fmt.Printf("elements:  %s\n", strings.Join(elems, " | "))
		}
	}
	if u.HasQuery() {
		fmt.Printf("query:     %s\n", u.Query())
		for _, param := range u.QueryParams() {
			fmt.Printf("  %s = %s\n", param.Name, param.Value)
		}
	}
	if u.HasFragment() {
		fmt.Printf("fragment:  %s\n", u.Fragment())
	}

	fmt.Printf("rendered:  %s\n", u.Render(usage))
	return nil
}
