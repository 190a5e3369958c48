// Tree command for the atlas CLI.
package main

import (
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <blueprint>",
	Short: "Print the tree a blueprint would build",
	Long: `Tree loads a YAML blueprint, constructs its catalog tree in
memory, and prints one line per node with its kind, id, and document
path. Nothing is written to disk.

Example:
  atlas tree atlas.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	outputDir, err := resolveOutputDir()
	if err != nil {
		return err
	}

	lib, err := newLibrary(outputDir, memfs.New())
	if err != nil {
		return err
	}

	if err := buildTree(lib, args[0]); err != nil {
		return err
	}

	return lib.Tree()
}
