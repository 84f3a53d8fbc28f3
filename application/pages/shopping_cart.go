package pages

import (
	"errors"
	"fmt"
	"strings"

	"cart_automation/domain/entities"
	"cart_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// ErrInvalidItemNumber is returned for a delete button position outside 1..count
var ErrInvalidItemNumber = errors.New("invalid value for item number")

// ShoppingCartPage is the page object of the shopping cart page
type ShoppingCartPage struct {
	session   interfaces.PageSession
	selectors entities.CartSelectors
	logger    logrus.FieldLogger
}

// NewShoppingCartPage - wraps an already navigated session
func NewShoppingCartPage(session interfaces.PageSession, logger logrus.FieldLogger) *ShoppingCartPage {
	return &ShoppingCartPage{
		session:   session,
		selectors: entities.DefaultCartSelectors(),
		logger:    logger,
	}
}

// Selectors - returns a copy of the selector table
func (p *ShoppingCartPage) Selectors() entities.CartSelectors {
	return p.selectors
}

// IsShoppingCartPageDisplayed - checks both the page title and the heading
func (p *ShoppingCartPage) IsShoppingCartPageDisplayed() (bool, error) {
	titleOK, err := p.VerifyShoppingCartPageTitle()
	if err != nil {
		return false, err
	}

	headingOK, err := p.verifyShoppingCartHeading()
	if err != nil {
		return false, err
	}

	return titleOK && headingOK, nil
}

// VerifyShoppingCartPageTitle - checks that the page title mentions the cart
func (p *ShoppingCartPage) VerifyShoppingCartPageTitle() (bool, error) {
	title, err := p.session.Title()
	if err != nil {
		return false, fmt.Errorf("failed to get page title: %w", err)
	}
	return strings.Contains(title, p.selectors.ExpectedTitle), nil
}

func (p *ShoppingCartPage) verifyShoppingCartHeading() (bool, error) {
	if err := p.session.WaitForSelector(p.selectors.Heading); err != nil {
		return false, fmt.Errorf("cart heading not found: %w", err)
	}
	return p.session.IsVisible(p.selectors.Heading)
}

// IsContinueShoppingButtonDisplayed - visibility of the continue shopping button
func (p *ShoppingCartPage) IsContinueShoppingButtonDisplayed() (bool, error) {
	return p.session.IsVisible(p.selectors.ContinueShoppingButton)
}

// IsEstimateShippingButtonDisplayed - visibility of the estimate shipping button
func (p *ShoppingCartPage) IsEstimateShippingButtonDisplayed() (bool, error) {
	return p.session.IsVisible(p.selectors.EstimateShippingButton)
}

// CalculateTotalPriceOfProducts - sums the subtotal of every cart row, 0 for no rows
func (p *ShoppingCartPage) CalculateTotalPriceOfProducts() (float64, error) {
	subtotals, err := p.session.QuerySelectorAll(p.selectors.ProductSubtotal)
	if err != nil {
		return 0, fmt.Errorf("failed to query product subtotals: %w", err)
	}

	texts := make([]string, 0, len(subtotals))
	for _, subtotal := range subtotals {
		text, err := subtotal.InnerText()
		if err != nil {
			return 0, fmt.Errorf("failed to read product subtotal: %w", err)
		}
		texts = append(texts, text)
	}

	total, err := entities.SumPrices(texts)
	if err != nil {
		return 0, err
	}
	return total.Float64(), nil
}

// GetNumberOfProductRows - counts the subtotal cells, one per cart row
func (p *ShoppingCartPage) GetNumberOfProductRows() (int, error) {
	subtotals, err := p.session.QuerySelectorAll(p.selectors.ProductSubtotal)
	if err != nil {
		return 0, fmt.Errorf("failed to query product subtotals: %w", err)
	}
	return len(subtotals), nil
}

// GetTotalSumDisplayed - parses the order total shown on the page
func (p *ShoppingCartPage) GetTotalSumDisplayed() (float64, error) {
	text, err := p.session.InnerText(p.selectors.OrderTotal)
	if err != nil {
		return 0, fmt.Errorf("failed to read order total: %w", err)
	}

	price, err := entities.ParsePrice(text)
	if err != nil {
		return 0, err
	}
	return price.Float64(), nil
}

// GetNumberOfItemsInCart - counts delete buttons once the page settles.
// Any driver error is logged and counted as an empty cart.
func (p *ShoppingCartPage) GetNumberOfItemsInCart() int {
	count, err := p.countDeleteButtons()
	if err != nil {
		p.logger.WithError(err).Warn("Delete item button not found. Returning 0.")
		return 0
	}
	return count
}

func (p *ShoppingCartPage) countDeleteButtons() (int, error) {
	if err := p.WaitForPageLoaded(); err != nil {
		return 0, err
	}
	if err := p.session.WaitForSelector(p.selectors.DeleteButton); err != nil {
		return 0, err
	}
	buttons, err := p.session.QuerySelectorAll(p.selectors.DeleteButton)
	if err != nil {
		return 0, err
	}
	return len(buttons), nil
}

// ClickNthDeleteButton - clicks the delete button of the itemNumber-th row (1-indexed)
// and waits for the page to settle
func (p *ShoppingCartPage) ClickNthDeleteButton(itemNumber int) error {
	buttons, err := p.session.QuerySelectorAll(p.selectors.DeleteButton)
	if err != nil {
		return fmt.Errorf("failed to query delete buttons: %w", err)
	}

	if itemNumber <= 0 || itemNumber > len(buttons) {
		return fmt.Errorf("%w: %d", ErrInvalidItemNumber, itemNumber)
	}

	p.logger.WithField("item", itemNumber).Debug("Clicking delete button")
	if err := buttons[itemNumber-1].Click(); err != nil {
		return fmt.Errorf("failed to click delete button %d: %w", itemNumber, err)
	}

	return p.WaitForPageLoaded()
}

// IsShoppingCartEmpty - checks the page body for the empty cart banner
func (p *ShoppingCartPage) IsShoppingCartEmpty() (bool, error) {
	body, err := p.session.TextContent("body")
	if err != nil {
		return false, fmt.Errorf("failed to read page body: %w", err)
	}
	return strings.Contains(body, p.selectors.EmptyCartText), nil
}

// WaitForPageLoaded - blocks until the loading overlay is hidden.
// No deadline is set here; the driver's default timeout applies.
func (p *ShoppingCartPage) WaitForPageLoaded() error {
	if err := p.session.WaitForFunction(p.selectors.LoadingOverlayHiddenExpr()); err != nil {
		return fmt.Errorf("page did not finish loading: %w", err)
	}
	return nil
}
