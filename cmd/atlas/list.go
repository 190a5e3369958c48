// List command for the atlas CLI.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/stac/internal/inventory"
)

var (
	flagListLimit int
	flagListJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded build documents, newest first",
	Long: `List prints the documents recorded by past build runs, newest
first. Each row shows when the document was written, the build it
belongs to, and the node behind it.

Example:
  atlas list
  atlas list --limit 10
  atlas list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&flagListLimit, "limit", 0, "maximum rows to print (0 = all)")
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := inventory.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open inventory: %w", err)
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("list inventory: %w", err)
	}

	if flagListLimit > 0 && len(entries) > flagListLimit {
		entries = entries[:flagListLimit]
	}

	if flagListJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entries: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %.8s  %-10s  %s  (%d bytes)\n",
			e.SavedAt.Format(time.RFC3339), e.BuildID, e.Kind, e.FilePath, e.Size)
	}
	return nil
}
