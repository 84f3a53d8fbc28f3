package terminal

import (
	"fmt"
	"io"

	"cart_automation/domain/entities"

	"github.com/fatih/color"
)

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	valueColor = color.New(color.FgCyan)
	grayColor  = color.New(color.Faint)
)

type TerminalInterface struct {
	out io.Writer
}

func NewTerminalInterface(out io.Writer) *TerminalInterface {
	return &TerminalInterface{out: out}
}

// PrintSummary - prints an audit report, one check per line
func (t *TerminalInterface) PrintSummary(summary entities.CartSummary) {
	fmt.Fprintf(t.out, "Shopping Cart audit %s\n", grayColor.Sprint(summary.URL))
	fmt.Fprintln(t.out, "===================")

	t.check("page displayed", summary.PageDisplayed)
	t.check("continue shopping button", summary.ContinueShoppingVisible)
	t.check("estimate shipping button", summary.EstimateShippingVisible)

	if summary.Empty {
		fmt.Fprintf(t.out, "  cart is %s\n", valueColor.Sprint("empty"))
		return
	}

	t.value("items", fmt.Sprintf("%d", summary.ItemCount))
	t.value("rows", fmt.Sprintf("%d", summary.SubtotalRows))
	t.check("item count matches rows", summary.ItemsMatch())
	t.value("sum of subtotals", fmt.Sprintf("%.2f", summary.SubtotalSum))
	t.value("displayed total", fmt.Sprintf("%.2f", summary.DisplayedTotal))
	t.check("totals match", summary.TotalsMatch())
}

// PrintCleared - prints the result of emptying the cart
func (t *TerminalInterface) PrintCleared(removed int) {
	fmt.Fprintf(t.out, "Removed %s item(s) from the cart\n", valueColor.Sprint(removed))
}

func (t *TerminalInterface) check(label string, ok bool) {
	mark := passColor.Sprint("✓")
	if !ok {
		mark = failColor.Sprint("✗")
	}
	fmt.Fprintf(t.out, "  %s %s\n", mark, label)
}

func (t *TerminalInterface) value(label, v string) {
	fmt.Fprintf(t.out, "  %s: %s\n", label, valueColor.Sprint(v))
}
