// Package e2e drives the shopping cart page object through a real Chromium.
// Run with: go test -tags e2e ./e2e/...
package e2e
