// Init command for the atlas CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/stac/internal/inventory"
)

// starterBlueprintName is the blueprint scaffolded into the working
// directory on first init.
const starterBlueprintName = "atlas.yaml"

// starterBlueprintYAML is a minimal working blueprint: one catalog,
// one collection, one item.
const starterBlueprintYAML = `# Atlas blueprint. Describe the catalog tree here; atlas build writes
# one JSON document per node under the output directory.
catalog:
  id: example
  description: An example catalog
  title: Example
  children:
    - collection:
        id: observations
        description: Example observations
        license: CC-BY-4.0
        children:
          - item:
              id: first-observation
              path: /observations/2024
              datetime: 2024-01-01T00:00:00Z
              geometry:
                type: Point
                coordinates: [0.0, 0.0]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize atlas directories and a starter blueprint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		outputDir, err := resolveOutputDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// Opening the store creates the inventory directory and schema.
		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		store, err := inventory.Open(dataDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		store.Close()

		wrote, err := ensureStarterBlueprint()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Atlas initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  output:", outputDir)
		fmt.Println("  data:  ", dataDir)
		if wrote {
			fmt.Println("  wrote: ", starterBlueprintName)
		}
		return nil
	},
}

// ensureStarterBlueprint writes atlas.yaml into the working directory
// unless one already exists. Reports whether it wrote the file.
func ensureStarterBlueprint() (bool, error) {
	_, err := os.Stat(starterBlueprintName)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat blueprint: %w", err)
	}
	if err := os.WriteFile(starterBlueprintName, []byte(starterBlueprintYAML), 0o644); err != nil {
		return false, fmt.Errorf("write blueprint: %w", err)
	}
	return true, nil
}
