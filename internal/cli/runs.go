package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/company-scout/scout/internal/config"
	"github.com/company-scout/scout/internal/report"
	"github.com/company-scout/scout/internal/ui"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved crawl reports",
	Long:  `Lists the JSON reports previously written by scan, newest first.`,
	Example: `  # List reports in the default directory
  scout runs

  # List reports somewhere else
  scout runs --output-dir /tmp/reports`,
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	runs, err := report.ListRuns(cfg.OutputDir)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("\nNo reports found in %s.\n", cfg.OutputDir)
		fmt.Println("\nCreate one with:")
		fmt.Println("  scout scan --url <company-website>")
		fmt.Println()
		return nil
	}

	fmt.Printf("\n%s (%d)\n\n", ui.Bold("Saved Reports"), len(runs))
	for i, run := range runs {
		fmt.Printf("%d. %s  %s\n", i+1, run.Name,
			ui.Dim(run.ModTime.Format("2006-01-02 15:04:05")))
	}
	fmt.Println()
	return nil
}
