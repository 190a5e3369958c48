// Build command for the atlas CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/stac/internal/inventory"
	"github.com/orbitalworks/stac/pkg/stac"
)

var buildCmd = &cobra.Command{
	Use:   "build <blueprint>",
	Short: "Build catalog documents from a blueprint",
	Long: `Build loads a YAML blueprint, constructs the catalog tree it
describes, and writes one JSON document per node under the output
directory. Every written document is recorded in the inventory.

Example:
  atlas build atlas.yaml
  atlas build --output ./site/catalogs atlas.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	lib, err := outputLibrary()
	if err != nil {
		return err
	}

	if err := buildTree(lib, args[0]); err != nil {
		return err
	}

	if err := lib.Save(); err != nil {
		return fmt.Errorf("save documents: %w", err)
	}

	nodes := lib.Objects()
	fmt.Printf("Built %d documents under %s\n", len(nodes), lib.Directory())

	if err := recordBuild(lib, nodes); err != nil {
		return fmt.Errorf("record build: %w", err)
	}
	return nil
}

// recordBuild stores one inventory row per written document.
func recordBuild(lib *stac.Library, nodes []stac.Persistable) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	store, err := inventory.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	docs := make([]inventory.Document, 0, len(nodes))
	for _, n := range nodes {
		doc := inventory.Document{
			Kind:     string(n.Kind()),
			NodeID:   n.ID(),
			TreePath: n.Path(),
			FilePath: n.DocumentPath(),
		}
		if fi, err := lib.Filesystem().Stat(n.DocumentPath()); err == nil {
			doc.Size = fi.Size()
		}
		docs = append(docs, doc)
	}

	build := inventory.NewBuild()
	if err := store.Record(build, docs...); err != nil {
		return err
	}

	fmt.Println("Recorded build", build.ID)
	return nil
}
