package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
)

// Client talks to the platform's REST messaging API with a bearer token.
type Client struct {
	BaseURL string
	Token   string

	http *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateMessage(ctx context.Context, channelID string, out OutgoingMessage) (*Message, error) {
	var msg Message
	url := fmt.Sprintf("%s/channels/%s/messages", c.BaseURL, channelID)
	if err := c.do(ctx, http.MethodPost, url, out, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) EditMessage(ctx context.Context, channelID, messageID string, out OutgoingMessage) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", c.BaseURL, channelID, messageID)
	return c.do(ctx, http.MethodPatch, url, out, nil)
}

func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", c.BaseURL, channelID, messageID)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

func (c *Client) GetMessage(ctx context.Context, channelID, messageID string) (*Message, error) {
	var msg Message
	url := fmt.Sprintf("%s/channels/%s/messages/%s", c.BaseURL, channelID, messageID)
	if err := c.do(ctx, http.MethodGet, url, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) History(ctx context.Context, channelID string, limit int) ([]*Message, error) {
	var msgs []*Message
	url := fmt.Sprintf("%s/channels/%s/messages?limit=%d", c.BaseURL, channelID, limit)
	if err := c.do(ctx, http.MethodGet, url, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		logging.Log.Errorf("PLATFORM: %s %s failed: %v", method, url, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		logging.Log.Errorf("PLATFORM: %s %s returned %d", method, url, res.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: bad response body: %v", ErrUnavailable, err)
	}
	return nil
}
