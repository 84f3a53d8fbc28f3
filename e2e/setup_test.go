//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"cart_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

var (
	pw     *playwright.Playwright
	chrome playwright.Browser
	server *httptest.Server
	logger = logrus.New()
)

// TestMain sets up and tears down the Playwright browser and the cart page server
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	var err error

	// browsers must be installed first: go run github.com/playwright-community/playwright-go/cmd/playwright install chromium
	pw, err = playwright.Run()
	if err != nil {
		panic(err)
	}
	defer pw.Stop()

	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}

	chrome, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		panic(err)
	}
	defer chrome.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(cartHTML))
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	return m.Run()
}

const cartHTML = `<!DOCTYPE html>
<html>
<head><title>Demo Store. Shopping Cart</title></head>
<body>
<div class="ajax-loading-block-window" style="display: none">Loading...</div>
<h1>Shopping Cart</h1>
<div id="cart">
<table>
<tbody id="rows">
<tr><td>Build your own computer</td><td class="product-subtotal">$10.50</td><td><button class="remove-btn">Remove</button></td></tr>
<tr><td>Digital Storm VANQUISH</td><td class="product-subtotal">$4.25</td><td><button class="remove-btn">Remove</button></td></tr>
</tbody>
</table>
<table>
<tr class="order-total"><td>Total:</td><td><strong>$14.75</strong></td></tr>
</table>
<button name="continueshopping">Continue shopping</button>
<button id="open-estimate-shipping-popup">Estimate shipping</button>
</div>
<script>
const overlay = document.querySelector('.ajax-loading-block-window');

function recalc() {
	let sum = 0;
	document.querySelectorAll('.product-subtotal').forEach(el => {
		sum += parseFloat(el.innerText.replace(/[^\d.]/g, ''));
	});
	document.querySelector('.order-total strong').innerText = '$' + sum.toFixed(2);
	if (document.querySelectorAll('.remove-btn').length === 0) {
		document.getElementById('cart').innerHTML = '<p>Your Shopping Cart is empty!</p>';
	}
}

document.addEventListener('click', e => {
	if (!e.target.classList.contains('remove-btn')) return;
	overlay.style.display = 'block';
	setTimeout(() => {
		e.target.closest('tr').remove();
		recalc();
		overlay.style.display = 'none';
	}, 300);
});
</script>
</body>
</html>`
