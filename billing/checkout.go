// Package billing creates checkout sessions for plan upgrades.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CheckoutSession is one started payment flow
type CheckoutSession struct {
	SessionID   string    `json:"sessionId"`
	CheckoutURL string    `json:"checkoutUrl"`
	Plan        string    `json:"plan"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CheckoutProvider starts checkout sessions with a payment backend
type CheckoutProvider interface {
	// CreateSession opens a checkout session for the given plan and account
	CreateSession(ctx context.Context, plan, email string) (*CheckoutSession, error)
}

// planPrices are the plans the checkout accepts
var planPrices = map[string]string{
	"pro":     "9.00",
	"premium": "19.00",
}

// ValidPlan reports whether a plan can be purchased
func ValidPlan(plan string) bool {
	_, ok := planPrices[plan]
	return ok
}

// MockProvider fabricates checkout sessions locally. Used in development and
// tests, and as the fallback when no payment backend is configured.
type MockProvider struct{}

// NewMockProvider creates a mock checkout provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) CreateSession(_ context.Context, plan, email string) (*CheckoutSession, error) {
	if !ValidPlan(plan) {
		return nil, fmt.Errorf("unknown plan: %s", plan)
	}

	sessionID := "cs_mock_" + uuid.NewString()
	return &CheckoutSession{
		SessionID:   sessionID,
		CheckoutURL: fmt.Sprintf("https://checkout.example.com/pay/%s", sessionID),
		Plan:        plan,
		Email:       email,
		CreatedAt:   time.Now(),
	}, nil
}
