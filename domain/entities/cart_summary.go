package entities

import "math"

// CartSummary - what one audit of the cart page observed
type CartSummary struct {
	URL                     string  `json:"url"`
	PageDisplayed           bool    `json:"page_displayed"`
	ContinueShoppingVisible bool    `json:"continue_shopping_visible"`
	EstimateShippingVisible bool    `json:"estimate_shipping_visible"`
	ItemCount               int     `json:"item_count"`
	SubtotalRows            int     `json:"subtotal_rows"`
	SubtotalSum             float64 `json:"subtotal_sum"`
	DisplayedTotal          float64 `json:"displayed_total"`
	Empty                   bool    `json:"empty"`
}

// TotalsMatch reports whether the subtotal sum equals the displayed total to the cent.
// Only the empty cart banner exempts a cart, since ItemCount is 0 on driver errors too.
func (s CartSummary) TotalsMatch() bool {
	if s.Empty {
		return s.SubtotalRows == 0
	}
	return math.Round(s.SubtotalSum*100) == math.Round(s.DisplayedTotal*100)
}

// ItemsMatch reports whether one delete button was counted per subtotal row
func (s CartSummary) ItemsMatch() bool {
	if s.Empty {
		return s.ItemCount == 0 && s.SubtotalRows == 0
	}
	return s.ItemCount > 0 && s.ItemCount == s.SubtotalRows
}

// Passed - both the totals and the item count agree with the rows
func (s CartSummary) Passed() bool {
	return s.TotalsMatch() && s.ItemsMatch()
}
