package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brogergvhs/komikat/internal/config"
	"github.com/brogergvhs/komikat/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagSection  string
	flagProgress bool
	flagIndent   bool
)

func init() {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Build the catalog once and print it as JSON",
		RunE:  runCatalog,
	}

	catalogCmd.Flags().StringVar(&flagSection, "section", "", "print only the section with this label")
	catalogCmd.Flags().BoolVar(&flagProgress, "progress", false, "show section progress on stderr")
	catalogCmd.Flags().BoolVar(&flagIndent, "indent", true, "indent JSON output")
	catalogCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "homepage URL")
	catalogCmd.Flags().StringVar(&flagListingURL, "listing-url", "", "secondary listing page URL")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		BaseURL:      flagBaseURL,
		ListingURL:   flagListingURL,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)

	var progress func(done, total int)
	var handle *ui.ProgressHandle
	if flagProgress {
		pm := ui.NewProgressManager(os.Stderr)
		defer pm.Close()

		handle = pm.Register("catalog")
		defer handle.MarkDone()
		progress = handle.Update
	}

	p, err := newPipeline(cfg, logSvc, progress)
	if err != nil {
		return err
	}

	cat := p.build(cmd.Context())
	if handle != nil {
		handle.MarkDone()
	}

	if cat.Failed() {
		return cat.Err
	}

	var out any = cat
	if flagSection != "" {
		s, ok := cat.Section(flagSection)
		if !ok {
			return fmt.Errorf("section %q not found", flagSection)
		}
		out = s
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if flagIndent {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(out)
}
