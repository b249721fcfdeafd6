package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/pkg/transport"
)

type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string) *Client {
	const timeout = time.Second * 5

	return &Client{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewRoundTripper(http.DefaultTransport),
		},
		url: url,
	}
}

type validateRequest struct {
	AccessToken string `json:"accessToken"`
}

type validateResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Validate asks the identity service who owns accessToken. A rejected token
// is reported as entity.ErrUnauthorized.
func (c *Client) Validate(ctx context.Context, accessToken string) (entity.Session, error) {
	body, err := json.Marshal(validateRequest{AccessToken: accessToken})
	if err != nil {
		return entity.Session{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/validate", bytes.NewReader(body))
	if err != nil {
		return entity.Session{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Session{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.Session{}, fmt.Errorf("%w: token rejected: status %d", entity.ErrUnauthorized, resp.StatusCode)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return entity.Session{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}

	var data validateResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.Session{}, fmt.Errorf("decode response: %w", err)
	}

	if data.ID.IsNil() || data.Email == "" {
		return entity.Session{}, fmt.Errorf("%w: incomplete session", entity.ErrUnauthorized)
	}

	return entity.Session{UserID: data.ID, Email: data.Email}, nil
}
