package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/neujobscan/backend/utils"
)

// HTTPProvider creates checkout sessions against an external payments API
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider creates a provider that POSTs session requests to the
// configured payment backend
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  utils.NewHTTPClient(timeout),
	}
}

func (p *HTTPProvider) CreateSession(ctx context.Context, plan, email string) (*CheckoutSession, error) {
	if !ValidPlan(plan) {
		return nil, fmt.Errorf("unknown plan: %s", plan)
	}

	payload, err := json.Marshal(map[string]string{
		"plan":  plan,
		"email": email,
		"price": planPrices[plan],
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/checkout/sessions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("checkout backend returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout response: %w", err)
	}
	session.Plan = plan
	session.Email = email
	return &session, nil
}
