package audit

import (
	"context"
	"errors"
	"fmt"

	"cart_automation/application/pages"
	"cart_automation/domain/entities"

	"github.com/sirupsen/logrus"
)

const maxIterations = 50

// ErrTooManyIterations is returned when the cart does not empty within maxIterations deletes
var ErrTooManyIterations = errors.New("max iterations reached")

type CartAuditor struct {
	page   *pages.ShoppingCartPage
	url    string
	logger logrus.FieldLogger
}

// NewCartAuditor - creates auditor for the cart page opened at url
func NewCartAuditor(page *pages.ShoppingCartPage, url string, logger logrus.FieldLogger) *CartAuditor {
	return &CartAuditor{
		page:   page,
		url:    url,
		logger: logger,
	}
}

// Audit - collects everything the cart page shows into a summary
func (a *CartAuditor) Audit(ctx context.Context) (entities.CartSummary, error) {
	summary := entities.CartSummary{URL: a.url}

	steps := []struct {
		name string
		run  func() error
	}{
		{"page displayed", func() (err error) {
			summary.PageDisplayed, err = a.page.IsShoppingCartPageDisplayed()
			return err
		}},
		{"continue shopping button", func() (err error) {
			summary.ContinueShoppingVisible, err = a.page.IsContinueShoppingButtonDisplayed()
			return err
		}},
		{"estimate shipping button", func() (err error) {
			summary.EstimateShippingVisible, err = a.page.IsEstimateShippingButtonDisplayed()
			return err
		}},
		{"empty banner", func() (err error) {
			summary.Empty, err = a.page.IsShoppingCartEmpty()
			return err
		}},
		{"subtotal rows", func() (err error) {
			summary.SubtotalRows, err = a.page.GetNumberOfProductRows()
			return err
		}},
		{"item count", func() error {
			// waiting for a delete button on an empty cart only runs into the timeout
			if summary.Empty {
				return nil
			}
			summary.ItemCount = a.page.GetNumberOfItemsInCart()
			return nil
		}},
		{"subtotal sum", func() (err error) {
			summary.SubtotalSum, err = a.page.CalculateTotalPriceOfProducts()
			return err
		}},
		{"displayed total", func() (err error) {
			// the total row is only rendered for a non-empty cart
			if summary.Empty || summary.SubtotalRows == 0 {
				return nil
			}
			summary.DisplayedTotal, err = a.page.GetTotalSumDisplayed()
			return err
		}},
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			return summary, fmt.Errorf("audit canceled: %w", ctx.Err())
		default:
		}

		if err := step.run(); err != nil {
			return summary, fmt.Errorf("failed to check %s: %w", step.name, err)
		}
	}

	a.logger.WithFields(logrus.Fields{
		"items":        summary.ItemCount,
		"rows":         summary.SubtotalRows,
		"subtotal_sum": summary.SubtotalSum,
		"total":        summary.DisplayedTotal,
	}).Info("Cart audited")

	return summary, nil
}

// ClearCart - deletes the first cart row until none is left, returns the number removed
func (a *CartAuditor) ClearCart(ctx context.Context) (int, error) {
	removed := 0

	for iteration := 0; iteration < maxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return removed, fmt.Errorf("clear canceled: %w", ctx.Err())
		default:
		}

		if a.page.GetNumberOfItemsInCart() == 0 {
			return removed, nil
		}

		if err := a.page.ClickNthDeleteButton(1); err != nil {
			return removed, fmt.Errorf("failed to remove item: %w", err)
		}
		removed++
		a.logger.WithField("removed", removed).Debug("Item removed from cart")
	}

	return removed, ErrTooManyIterations
}
