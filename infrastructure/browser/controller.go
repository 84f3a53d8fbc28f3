package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cart_automation/domain/interfaces"
	"cart_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

type browserController struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext
	navTimeout float64
	logger     *logrus.Logger
}

var _ interfaces.Browser = (*browserController)(nil)

// NewPlaywrightBrowser - starts playwright and launches Chromium
func NewPlaywrightBrowser(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMs),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-infobars",
			"--disable-notifications",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserContext, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		JavaScriptEnabled: playwright.Bool(true),
		IgnoreHttpsErrors: playwright.Bool(true),
		UserAgent:         playwright.String("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	// every page call without its own timeout uses this one
	browserContext.SetDefaultTimeout(cfg.TimeoutMs)

	logger.WithFields(logrus.Fields{
		"headless":   cfg.Headless,
		"timeout_ms": cfg.TimeoutMs,
	}).Debug("Browser launched")

	return &browserController{
		pw:         pw,
		browser:    browser,
		context:    browserContext,
		navTimeout: cfg.NavigationTimeoutMs,
		logger:     logger,
	}, nil
}

// NewSession - opens a new tab and navigates to url
func (b *browserController) NewSession(ctx context.Context, url string) (interfaces.PageSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := b.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(b.navTimeout),
	}); err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	b.logger.WithField("url", url).Info("Page opened")

	return NewSession(page), nil
}

// Close - closes the context, the browser and the driver
func (b *browserController) Close() error {
	var errs []error

	if b.context != nil {
		if err := b.context.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
		b.context = nil
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
		b.pw = nil
	}

	return errors.Join(errs...)
}

// isClosedErr - reports errors raised by closing something already closed
func isClosedErr(err error) bool {
	return strings.Contains(err.Error(), "closed")
}
