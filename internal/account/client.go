package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Service reports the current user's subscription.
type Service interface {
	CurrentSubscription(ctx context.Context) (Subscription, error)
}

// Client fetches subscription status from the billing backend with an
// opaque bearer credential. It never refreshes the credential; that is the
// session layer's job.
type Client struct {
	httpClient *resty.Client
	token      string
}

// NewClient creates a billing client for baseURL authorized by token.
func NewClient(baseURL, token string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	return &Client{
		httpClient: client,
		token:      token,
	}
}

// CurrentSubscription returns the subscription for the token's user.
func (c *Client) CurrentSubscription(ctx context.Context) (Subscription, error) {
	var sub Subscription
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.token).
		Get("/billing/v1/subscription")
	if err != nil {
		return sub, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return sub, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	if err := json.Unmarshal(res.Body(), &sub); err != nil {
		return sub, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if sub.Status == "" {
		sub.Status = StatusFree
	}
	return sub, nil
}

// Static is a Service that always answers with a fixed subscription. The
// CLI uses it when the user forces the local tier or no credential is
// configured.
type Static struct {
	Subscription Subscription
}

// CurrentSubscription implements Service.
func (s Static) CurrentSubscription(_ context.Context) (Subscription, error) {
	return s.Subscription, nil
}
