package audit_test

import (
	"context"
	"errors"
	"testing"

	"cart_automation/application/audit"
	"cart_automation/application/pages"
	"cart_automation/application/pages/pagetest"
	"cart_automation/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

const cartURL = "http://shop.test/cart"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type cartAuditorSuite struct {
	suite.Suite
}

// entry point to run the tests in the suite
func TestCartAuditorSuite(t *testing.T) {
	suite.Run(t, new(cartAuditorSuite))
}

func (suite *cartAuditorSuite) newAuditor(session *pagetest.Session) *audit.CartAuditor {
	logger, _ := test.NewNullLogger()
	return audit.NewCartAuditor(pages.NewShoppingCartPage(session, logger), cartURL, logger)
}

func (suite *cartAuditorSuite) TestAudit() {
	tests := []struct {
		name    string
		session func() *pagetest.Session
		want    entities.CartSummary
	}{
		{
			name:    "cart with two items",
			session: func() *pagetest.Session { return pagetest.NewCart("Total: $14.75", "$10.50", "$4.25") },
			want: entities.CartSummary{
				URL:                     cartURL,
				PageDisplayed:           true,
				ContinueShoppingVisible: true,
				EstimateShippingVisible: true,
				ItemCount:               2,
				SubtotalRows:            2,
				SubtotalSum:             14.75,
				DisplayedTotal:          14.75,
			},
		},
		{
			name:    "empty cart skips the total",
			session: func() *pagetest.Session { return pagetest.NewCart("") },
			want: entities.CartSummary{
				URL:                     cartURL,
				PageDisplayed:           true,
				ContinueShoppingVisible: true,
				EstimateShippingVisible: true,
				Empty:                   true,
			},
		},
		{
			name: "totals disagree",
			session: func() *pagetest.Session {
				s := pagetest.NewCart("$20.00", "$10.50", "$4.25")
				s.PageTitle = "Checkout"
				return s
			},
			want: entities.CartSummary{
				URL:                     cartURL,
				ContinueShoppingVisible: true,
				EstimateShippingVisible: true,
				ItemCount:               2,
				SubtotalRows:            2,
				SubtotalSum:             14.75,
				DisplayedTotal:          20,
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			got, err := suite.newAuditor(tt.session()).Audit(context.Background())
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func (suite *cartAuditorSuite) TestAuditEmptyCartSkipsCount() {
	session := pagetest.NewCart("")

	summary, err := suite.newAuditor(session).Audit(context.Background())
	suite.Require().NoError(err)
	suite.True(summary.Passed())
	suite.Zero(session.CallCount("WaitForFunction"))
	suite.NotContains(session.Calls, "WaitForSelector(.remove-btn)")
}

func (suite *cartAuditorSuite) TestAuditFailedCountIsNotAMatch() {
	session := pagetest.NewCart("Total: $14.75", "$10.50", "$4.25")
	session.Errs["WaitForFunction"] = errors.New("timeout 30000ms exceeded")
	logger, hook := test.NewNullLogger()
	auditor := audit.NewCartAuditor(pages.NewShoppingCartPage(session, logger), cartURL, logger)

	summary, err := auditor.Audit(context.Background())
	suite.Require().NoError(err)

	suite.False(summary.Empty)
	suite.Zero(summary.ItemCount)
	suite.Equal(2, summary.SubtotalRows)
	suite.Equal(14.75, summary.DisplayedTotal, "total is read even when the count failed")
	suite.False(summary.ItemsMatch())
	suite.False(summary.Passed())
	suite.Len(hook.AllEntries(), 2, "count warning and audit info")
}

func (suite *cartAuditorSuite) TestAuditPropagatesErrors() {
	errDriver := errors.New("target closed")
	session := pagetest.NewCart("$1.00", "$1.00")
	session.Errs["TextContent"] = errDriver

	_, err := suite.newAuditor(session).Audit(context.Background())
	suite.ErrorIs(err, errDriver)
	suite.Contains(err.Error(), "failed to check empty banner")
}

func (suite *cartAuditorSuite) TestAuditCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := pagetest.NewCart("$1.00", "$1.00")
	_, err := suite.newAuditor(session).Audit(ctx)
	suite.ErrorIs(err, context.Canceled)
	suite.Empty(session.Calls)
}

func (suite *cartAuditorSuite) TestClearCart() {
	session := pagetest.NewCart("$6.00", "$1.00", "$2.00", "$3.00")

	removed, err := suite.newAuditor(session).ClearCart(context.Background())
	suite.Require().NoError(err)
	suite.Equal(3, removed)
	suite.Empty(session.Rows)
	suite.Equal(3, session.CallCount("Click"))
	suite.Contains(session.Body, "Your Shopping Cart is empty!")
}

func (suite *cartAuditorSuite) TestClearCartEmpty() {
	session := pagetest.NewCart("")

	removed, err := suite.newAuditor(session).ClearCart(context.Background())
	suite.Require().NoError(err)
	suite.Zero(removed)
	suite.Zero(session.CallCount("Click"))
}

func (suite *cartAuditorSuite) TestClearCartNeverEmpties() {
	session := pagetest.NewCart("$1.00", "$1.00")
	session.Rows[0].Keep = true

	removed, err := suite.newAuditor(session).ClearCart(context.Background())
	suite.ErrorIs(err, audit.ErrTooManyIterations)
	suite.Equal(50, removed)
}

func (suite *cartAuditorSuite) TestClearCartClickFails() {
	errDriver := errors.New("element is detached")
	session := pagetest.NewCart("$1.00", "$1.00")
	session.Rows[0].ClickErr = errDriver

	removed, err := suite.newAuditor(session).ClearCart(context.Background())
	suite.ErrorIs(err, errDriver)
	suite.Zero(removed)
}
