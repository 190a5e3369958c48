// Check command for the atlas CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/stac/internal/linkcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Verify link targets across written documents",
	Long: `Check walks every JSON document under the given directory
(default: the output directory) and verifies that relative link and
asset hrefs point at files that exist. Scheme-qualified hrefs are
skipped.

Example:
  atlas check
  atlas check ./site/catalogs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		resolved, err := resolveOutputDir()
		if err != nil {
			return err
		}
		dir = resolved
	}

	report, err := linkcheck.Check(dir)
	if err != nil {
		return fmt.Errorf("check %s: %w", dir, err)
	}

	for _, p := range report.Problems {
		fmt.Println(p)
	}

	fmt.Printf("Checked %d documents, %d links (%d skipped)\n",
		report.Documents, report.Links, len(report.Skipped))

	if len(report.Problems) > 0 {
		fmt.Fprintf(os.Stderr, "check: %d broken references\n", len(report.Problems))
		os.Exit(exitUserError)
	}
	return nil
}
