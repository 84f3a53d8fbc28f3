package interfaces

import "context"

// Element defines a handle to a single element of the current DOM snapshot
type Element interface {
	// InnerText returns the rendered text of the element
	InnerText() (string, error)

	// Click clicks on the element
	Click() error
}

// PageSession defines an open, navigated browser page
type PageSession interface {
	// Title returns the current page title
	Title() (string, error)

	// IsVisible checks if the element matching selector is visible
	IsVisible(selector string) (bool, error)

	// WaitForSelector waits for an element matching selector to appear
	WaitForSelector(selector string) error

	// QuerySelectorAll returns all elements matching selector in document order
	QuerySelectorAll(selector string) ([]Element, error)

	// InnerText returns the rendered text of the element matching selector
	InnerText(selector string) (string, error)

	// TextContent returns the text content of the element matching selector
	TextContent(selector string) (string, error)

	// WaitForFunction waits until the JS expression evaluates to a truthy value
	WaitForFunction(expression string) error
}

// Browser defines the interface for opening page sessions
type Browser interface {
	// NewSession opens a new page and navigates it to url
	NewSession(ctx context.Context, url string) (PageSession, error)

	// Close closes the browser
	Close() error
}
