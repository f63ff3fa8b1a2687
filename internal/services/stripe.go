package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

// StripeService creates payment intents against the Stripe REST API. The
// engine only computes the minor-unit amount; card data never touches this
// process.
type StripeService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

func NewStripeService(secretKey string, logger *logging.Logger) *StripeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StripeService{
		secretKey:  secretKey,
		baseURL:    "https://api.stripe.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// WithBaseURL overrides the Stripe API base URL (for testing).
func (s *StripeService) WithBaseURL(baseURL string) *StripeService {
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

// CreatePaymentIntent converts price to minor units (price x 100, usd) and
// asks Stripe for a card payment intent, returning the client secret.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if s.secretKey == "" {
		return "", fmt.Errorf("stripe: secret key not configured")
	}

	amount := int64(math.Round(price * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("stripe: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Error("stripe payment intent failed", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("stripe: payment intent returned status %d", resp.StatusCode)
	}

	var intent struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("stripe: decode response: %w", err)
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("stripe: response missing client secret")
	}

	s.logger.Info("payment intent created", "amount", amount, "currency", "usd")
	return intent.ClientSecret, nil
}
