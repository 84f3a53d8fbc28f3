package browser

import (
	"cart_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
)

type playwrightSession struct {
	page playwright.Page
}

var _ interfaces.PageSession = (*playwrightSession)(nil)

// NewSession - wraps an open playwright page
func NewSession(page playwright.Page) interfaces.PageSession {
	return &playwrightSession{page: page}
}

func (s *playwrightSession) Title() (string, error) {
	return s.page.Title()
}

func (s *playwrightSession) IsVisible(selector string) (bool, error) {
	return s.page.IsVisible(selector)
}

// WaitForSelector - waits until an element is attached, visible or not
func (s *playwrightSession) WaitForSelector(selector string) error {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State: playwright.WaitForSelectorStateAttached,
	})
	return err
}

func (s *playwrightSession) QuerySelectorAll(selector string) ([]interfaces.Element, error) {
	handles, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}

	elements := make([]interfaces.Element, 0, len(handles))
	for _, handle := range handles {
		elements = append(elements, &playwrightElement{handle: handle})
	}
	return elements, nil
}

func (s *playwrightSession) InnerText(selector string) (string, error) {
	return s.page.InnerText(selector)
}

func (s *playwrightSession) TextContent(selector string) (string, error) {
	return s.page.TextContent(selector)
}

func (s *playwrightSession) WaitForFunction(expression string) error {
	_, err := s.page.WaitForFunction(expression, nil)
	return err
}

type playwrightElement struct {
	handle playwright.ElementHandle
}

func (e *playwrightElement) InnerText() (string, error) {
	return e.handle.InnerText()
}

func (e *playwrightElement) Click() error {
	return e.handle.Click()
}
