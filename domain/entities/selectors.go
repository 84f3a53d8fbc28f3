package entities

import "fmt"

// CartSelectors holds the element selectors of the shopping cart page
type CartSelectors struct {
	ExpectedTitle          string
	Heading                string
	ContinueShoppingButton string
	EstimateShippingButton string
	ProductSubtotal        string
	OrderTotal             string // XPath
	DeleteButton           string
	EmptyCartText          string
	LoadingOverlay         string
}

// DefaultCartSelectors returns the selector table of the shopping cart page
func DefaultCartSelectors() CartSelectors {
	return CartSelectors{
		ExpectedTitle:          "Shopping Cart",
		Heading:                "h1:has-text('Shopping Cart')",
		ContinueShoppingButton: "button[name='continueshopping']",
		EstimateShippingButton: "#open-estimate-shipping-popup",
		ProductSubtotal:        ".product-subtotal",
		OrderTotal:             "//tr[@class='order-total']//strong",
		DeleteButton:           ".remove-btn",
		EmptyCartText:          "Your Shopping Cart is empty!",
		LoadingOverlay:         ".ajax-loading-block-window",
	}
}

// LoadingOverlayHiddenExpr - JS predicate that holds once the loading overlay is hidden
func (s CartSelectors) LoadingOverlayHiddenExpr() string {
	return fmt.Sprintf("document.querySelector('%s').style.display === 'none'", s.LoadingOverlay)
}
