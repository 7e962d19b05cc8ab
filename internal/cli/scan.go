package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/company-scout/scout/internal/config"
	"github.com/company-scout/scout/internal/crawler"
	"github.com/company-scout/scout/internal/fetch"
	"github.com/company-scout/scout/internal/ratelimit"
	"github.com/company-scout/scout/internal/report"
)

var (
	scanURL        string
	scanMaxPages   int
	scanSettle     time.Duration
	scanNavTimeout time.Duration
	scanEngine     string
	scanSavePages  bool
	scanNoSave     bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan --url <url>",
	Short: "Crawl a company website and extract structured information",
	Long: `Fetches the homepage, selects up to 8 priority pages (about, pricing,
careers, contact and similar), aggregates their visible text, and runs the
field extractors over the aggregate. The result is printed as a summary and
saved as a JSON report.`,
	Example: `  # Scan a company site
  scout scan --url https://example.com

  # Faster scan of a server-rendered site, skipping the browser
  scout scan --url example.com --engine http

  # Keep Markdown copies of every fetched page
  scout scan --url example.com --save-pages`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanURL, "url", "", "Company website URL to scan (required)")
	scanCmd.Flags().IntVar(&scanMaxPages, "max-pages", config.DefaultMaxPages, "Maximum priority pages to fetch")
	scanCmd.Flags().DurationVar(&scanSettle, "settle", config.DefaultSettleDelay, "Wait after navigation for dynamic content")
	scanCmd.Flags().DurationVar(&scanNavTimeout, "nav-timeout", config.DefaultNavTimeout, "Per-page navigation timeout")
	scanCmd.Flags().StringVar(&scanEngine, "engine", config.DefaultEngine, "Fetch engine: chrome or http")
	scanCmd.Flags().BoolVar(&scanSavePages, "save-pages", false, "Also export each fetched page as Markdown")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "Print the summary without writing a report file")
	_ = scanCmd.MarkFlagRequired("url")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}
	cfg.MaxPages = scanMaxPages
	cfg.SettleDelay = scanSettle
	cfg.NavTimeout = scanNavTimeout
	cfg.Engine = scanEngine

	targetURL := scanURL
	if !strings.HasPrefix(targetURL, "http://") && !strings.HasPrefix(targetURL, "https://") {
		targetURL = "https://" + targetURL
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	c := crawler.New(fetcher, crawler.Options{
		MaxPages: cfg.MaxPages,
		Limiter:  ratelimit.NewHostLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		KeepHTML: scanSavePages,
		OnPage: func(url string, index, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("Crawling priority pages"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Add(1)
		},
	})

	log.Info().Str("url", targetURL).Str("engine", cfg.Engine).Msg("Starting scan")
	result := c.Run(cmd.Context(), targetURL)
	if bar != nil {
		_ = bar.Finish()
	}

	report.PrintSummary(os.Stdout, result)

	if result.Identity == nil {
		return fmt.Errorf("could not reach %s", targetURL)
	}

	if !scanNoSave {
		path, err := report.Save(result, cfg.OutputDir)
		if err != nil {
			return err
		}
		fmt.Printf("\n✓ Saved to %s\n", path)

		if scanSavePages {
			if err := report.SavePages(c.PageHTML(), cfg.OutputDir); err != nil {
				log.Warn().Err(err).Msg("Page export incomplete")
			}
		}
	}
	return nil
}

func newFetcher(cfg *config.Config) (fetch.Fetcher, error) {
	switch cfg.Engine {
	case "http":
		return fetch.NewHTTPFetcher(cfg.NavTimeout, cfg.UserAgent), nil
	default:
		return fetch.NewChromeFetcher(fetch.ChromeOptions{
			NavTimeout:  cfg.NavTimeout,
			SettleDelay: cfg.SettleDelay,
			Headless:    cfg.Headless,
			UserAgent:   cfg.UserAgent,
			Proxy:       cfg.Proxy,
			ChromePath:  cfg.ChromePath,
		})
	}
}
