// Package pagetest provides an in-memory PageSession for page object tests.
package pagetest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cart_automation/domain/entities"
	"cart_automation/domain/interfaces"
)

// ErrNoElement is returned when no element matches a selector
var ErrNoElement = errors.New("no element matches selector")

// Row is one cart line
type Row struct {
	Subtotal string
	// ClickErr is returned when the row's delete button is clicked
	ClickErr error
	// Keep leaves the row in place after a successful click
	Keep     bool
}

// Session models the shopping cart page in memory.
// Clicking a delete button removes its row and, when the last one goes,
// replaces the totals with the empty cart banner.
type Session struct {
	mu sync.Mutex

	PageTitle  string
	// Visible lists attached elements outside the rows and their visibility
	Visible    map[string]bool
	Rows       []Row
	OrderTotal string // empty means the total node is absent
	Body       string

	// Errs makes the named method fail, e.g. Errs["WaitForFunction"]
	Errs map[string]error

	Calls []string

	selectors entities.CartSelectors
}

var _ interfaces.PageSession = (*Session)(nil)

// NewCart - creates a session showing a cart with the given subtotals
func NewCart(total string, subtotals ...string) *Session {
	s := &Session{
		PageTitle:  "Your store. Shopping Cart",
		OrderTotal: total,
		Errs:       make(map[string]error),
		selectors:  entities.DefaultCartSelectors(),
	}
	s.Visible = map[string]bool{
		s.selectors.Heading:                true,
		s.selectors.ContinueShoppingButton: true,
		s.selectors.EstimateShippingButton: true,
	}
	for _, subtotal := range subtotals {
		s.Rows = append(s.Rows, Row{Subtotal: subtotal})
	}
	if len(s.Rows) == 0 {
		s.Body = "Shopping Cart " + s.selectors.EmptyCartText
	} else {
		s.Body = "Shopping Cart Product Price Qty. Total"
	}
	return s
}

// CallCount - number of recorded calls of method
func (s *Session) CallCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.Calls {
		if strings.HasPrefix(c, method+"(") {
			n++
		}
	}
	return n
}

func (s *Session) record(method, arg string) error {
	s.Calls = append(s.Calls, fmt.Sprintf("%s(%s)", method, arg))
	return s.Errs[method]
}

func (s *Session) Title() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("Title", ""); err != nil {
		return "", err
	}
	return s.PageTitle, nil
}

func (s *Session) IsVisible(selector string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("IsVisible", selector); err != nil {
		return false, err
	}
	return s.Visible[selector], nil
}

func (s *Session) WaitForSelector(selector string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("WaitForSelector", selector); err != nil {
		return err
	}
	if _, attached := s.Visible[selector]; !attached && s.countLocked(selector) == 0 {
		return fmt.Errorf("timeout waiting for %q: %w", selector, ErrNoElement)
	}
	return nil
}

func (s *Session) QuerySelectorAll(selector string) ([]interfaces.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("QuerySelectorAll", selector); err != nil {
		return nil, err
	}

	elements := make([]interfaces.Element, 0, len(s.Rows))
	switch selector {
	case s.selectors.ProductSubtotal:
		for _, row := range s.Rows {
			elements = append(elements, &element{session: s, text: row.Subtotal})
		}
	case s.selectors.DeleteButton:
		for i := range s.Rows {
			elements = append(elements, &element{session: s, text: "Remove", row: s.Rows[i]})
		}
	}
	return elements, nil
}

func (s *Session) InnerText(selector string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("InnerText", selector); err != nil {
		return "", err
	}
	if selector == s.selectors.OrderTotal && s.OrderTotal != "" {
		return s.OrderTotal, nil
	}
	return "", fmt.Errorf("%q: %w", selector, ErrNoElement)
}

func (s *Session) TextContent(selector string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("TextContent", selector); err != nil {
		return "", err
	}
	if selector != "body" {
		return "", fmt.Errorf("%q: %w", selector, ErrNoElement)
	}
	return s.Body, nil
}

func (s *Session) WaitForFunction(expression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.record("WaitForFunction", expression)
}

func (s *Session) countLocked(selector string) int {
	switch selector {
	case s.selectors.ProductSubtotal, s.selectors.DeleteButton:
		return len(s.Rows)
	}
	return 0
}

// remove drops the row whose delete button was clicked
func (s *Session) remove(row Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record("Click", row.Subtotal); err != nil {
		return err
	}
	if row.ClickErr != nil {
		return row.ClickErr
	}
	if row.Keep {
		return nil
	}

	for i, r := range s.Rows {
		if r == row {
			s.Rows = append(s.Rows[:i], s.Rows[i+1:]...)
			break
		}
	}
	if len(s.Rows) == 0 {
		s.OrderTotal = ""
		s.Body = "Shopping Cart " + s.selectors.EmptyCartText
	}
	return nil
}

type element struct {
	session *Session
	text    string
	row     Row
}

func (e *element) InnerText() (string, error) {
	return e.text, nil
}

func (e *element) Click() error {
	return e.session.remove(e.row)
}
