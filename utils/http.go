package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

const userAgent = "NeuJobScan/1.0 (Cloud Run)"

// NewHTTPClient creates the client used for outbound calls to payment and
// other external backends. TLS 1.2 minimum, pooled connections, a redirect
// cap, and a default User-Agent on every request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{next: transport},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// userAgentTransport sets the default User-Agent when the caller did not
type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return t.next.RoundTrip(req)
}
