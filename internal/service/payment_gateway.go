package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"qudurat_backend/internal/config"
)

// PaymentGateway answers one question: what is the state of a payment the
// client claims to have made. Verification is a single remote round trip.
type PaymentGateway interface {
	Verify(paymentRef string) (*PaymentStatus, error)
}

type PaymentStatus struct {
	Ref           string `json:"id"`
	Status        string `json:"status"` // paid, pending, failed
	AmountHalalas int    `json:"amount"`
}

func (p *PaymentStatus) Paid() bool {
	return p.Status == "paid"
}

// HTTPPaymentGateway talks to the configured payment provider's REST API.
type HTTPPaymentGateway struct {
	cfg    config.PaymentConfig
	client *http.Client
}

func NewHTTPPaymentGateway(cfg config.PaymentConfig) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *HTTPPaymentGateway) Verify(paymentRef string) (*PaymentStatus, error) {
	req, err := http.NewRequest(http.MethodGet, g.cfg.BaseURL+"/v1/payments/"+paymentRef, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var status PaymentStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}
