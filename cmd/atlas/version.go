// Version command for the atlas CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/stac/pkg/stac"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the atlas version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("atlas", stac.Version)
	},
}
