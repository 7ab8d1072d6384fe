package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-webtemplate/pkg/viewmodel/home"
)

var itemsJSON bool

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Print the first page items",
	Args:  cobra.NoArgs,
	RunE:  runItems,
}

func init() {
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "print as a JSON array")
}

func runItems(cmd *cobra.Command, args []string) error {
	items := home.NewFirstPageViewModel().FirstPageItems()
	out := cmd.OutOrStdout()

	if itemsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
	}
	return nil
}
