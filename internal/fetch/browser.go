package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer returns the HTML of a page after client-side rendering.
type Renderer func(ctx context.Context, url string, timeout time.Duration) (string, error)

// settleTimeout bounds how long a rendered page may take to add its meta description.
const settleTimeout = 3 * time.Second

const descriptionPresent = `!!document.querySelector('meta[name="description"], meta[property="og:description"]')`

// WithBrowser renders url in headless Chrome and returns the resulting HTML. Single page
// sites often set their meta description from script, so rendering waits until one
// appears or settleTimeout passes. Requires a local Chrome or Chromium.
func WithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("lang", "de-DE"),
		chromedp.UserAgent(DefaultUserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		waitForDescription(settleTimeout),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}
	return html, nil
}

// waitForDescription polls for a meta description. A page that never gets one is
// taken as rendered.
func waitForDescription(settle time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var present bool
		err := chromedp.Poll(descriptionPresent, &present, chromedp.WithPollingTimeout(settle)).Do(ctx)
		if errors.Is(err, chromedp.ErrPollingTimeout) {
			return nil
		}
		return err
	})
}
