package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// ChromeOptions configures a ChromeFetcher.
type ChromeOptions struct {
	// NavTimeout bounds a single navigation, page load included.
	NavTimeout time.Duration
	// SettleDelay is how long to wait after navigation so dynamic content
	// can render before the page source is read.
	SettleDelay time.Duration
	Headless    bool
	UserAgent   string
	Proxy       string
	ChromePath  string
}

// ChromeFetcher fetches pages through a headless Chrome session. One
// browser is started per fetcher and reused for every navigation in the
// run; Close shuts it down.
type ChromeFetcher struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	navTimeout    time.Duration
	settleDelay   time.Duration
}

// NewChromeFetcher starts a browser session with the given options.
func NewChromeFetcher(opts ChromeOptions) (*ChromeFetcher, error) {
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = 10 * time.Second
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}

	chromePath := opts.ChromePath
	if chromePath == "" {
		chromePath = FindChrome()
	}

	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("window-size", "1920,1080"),
	}
	if chromePath != "" {
		allocOpts = append([]chromedp.ExecAllocatorOption{chromedp.ExecPath(chromePath)}, allocOpts...)
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", "new"))
	} else {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.Proxy != "" {
		allocOpts = append(allocOpts, chromedp.ProxyServer(opts.Proxy))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser now so startup failures surface here, not on the
	// first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	log.Debug().
		Str("chrome_path", chromePath).
		Bool("headless", opts.Headless).
		Dur("nav_timeout", opts.NavTimeout).
		Dur("settle_delay", opts.SettleDelay).
		Msg("Browser session started")

	return &ChromeFetcher{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		navTimeout:    opts.NavTimeout,
		settleDelay:   opts.SettleDelay,
	}, nil
}

// Fetch navigates to url, waits for the settle delay, and returns the
// rendered page source. A navigation timeout counts as an ordinary fetch
// error.
func (f *ChromeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	navCtx, cancel := context.WithTimeout(f.browserCtx, f.navTimeout+f.settleDelay)
	defer cancel()

	// chromedp actions must run on the browser context chain, so caller
	// cancellation is propagated by hand.
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-navCtx.Done():
		}
	}()

	start := time.Now()
	var source string
	err := chromedp.Run(navCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.Sleep(f.settleDelay),
		chromedp.OuterHTML("html", &source, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("navigation failed for %s: %w", url, err)
	}
	if source == "" {
		return "", ErrEmptyDocument
	}

	log.Debug().
		Str("url", url).
		Int("bytes", len(source)).
		Dur("elapsed", time.Since(start)).
		Msg("Page fetched")
	return source, nil
}

// Close shuts down the browser session.
func (f *ChromeFetcher) Close() error {
	f.browserCancel()
	f.allocCancel()
	log.Debug().Msg("Browser session closed")
	return nil
}
