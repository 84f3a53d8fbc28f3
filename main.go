package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cart_automation/application/audit"
	"cart_automation/application/pages"
	"cart_automation/infrastructure/browser"
	"cart_automation/infrastructure/config"
	"cart_automation/infrastructure/storage"
	"cart_automation/presentation/terminal"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

var (
	errTotalsMismatch = errors.New("sum of subtotals does not match the displayed total")
	errItemsMismatch  = errors.New("item count does not match the cart rows")
)

var urlFlag = &cli.StringFlag{
	Name:  "url",
	Usage: "shopping cart page to open (overrides CART_URL)",
}

// withAuditor opens the cart page and hands an auditor to fn
func withAuditor(c *cli.Context, fn func(ctx context.Context, auditor *audit.CartAuditor) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if url := c.String(urlFlag.Name); url != "" {
		cfg.CartURL = url
	}

	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := browser.NewPlaywrightBrowser(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close browser")
		}
	}()

	session, err := b.NewSession(ctx, cfg.CartURL)
	if err != nil {
		return err
	}

	page := pages.NewShoppingCartPage(session, logger)
	return fn(ctx, audit.NewCartAuditor(page, cfg.CartURL, logger))
}

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Check the shopping cart page and compare its totals",
		Flags: []cli.Flag{
			urlFlag,
			&cli.StringFlag{
				Name:  "save",
				Usage: "directory to append the audit report to",
			},
		},
		Action: func(c *cli.Context) error {
			return withAuditor(c, func(ctx context.Context, auditor *audit.CartAuditor) error {
				summary, err := auditor.Audit(ctx)
				if err != nil {
					return err
				}

				terminal.NewTerminalInterface(c.App.Writer).PrintSummary(summary)

				if dir := c.String("save"); dir != "" {
					store, err := storage.NewReportStore(dir)
					if err != nil {
						return fmt.Errorf("failed to open report store: %w", err)
					}
					if err := store.Append(storage.AuditRecord{At: time.Now().UTC(), Summary: summary}); err != nil {
						return fmt.Errorf("failed to save report: %w", err)
					}
				}

				if !summary.TotalsMatch() {
					return cli.Exit(errTotalsMismatch.Error(), 2)
				}
				if !summary.ItemsMatch() {
					return cli.Exit(errItemsMismatch.Error(), 2)
				}
				return nil
			})
		},
	}
}

func clearCommand() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove every item from the shopping cart",
		Flags: []cli.Flag{urlFlag},
		Action: func(c *cli.Context) error {
			return withAuditor(c, func(ctx context.Context, auditor *audit.CartAuditor) error {
				removed, err := auditor.ClearCart(ctx)
				if err != nil {
					return err
				}
				terminal.NewTerminalInterface(c.App.Writer).PrintCleared(removed)
				return nil
			})
		},
	}
}

func main() {
	app := &cli.App{
		Name:    "cartcheck",
		Usage:   "Shopping cart page checks driven through playwright",
		Version: version,
		Commands: []*cli.Command{
			auditCommand(),
			clearCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
