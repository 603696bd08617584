// Package platform talks to the chat platform adapter over its REST API.
// The adapter (the command shell) owns the actual platform session; this
// client only exercises the channel and messaging capabilities the core
// depends on.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"slot-lab/contract"
)

const requestTimeout = 15 * time.Second

// Client implements contract.ChannelProvider and contract.Messenger.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type createChannelRequest struct {
	Name    string `json:"name"`
	GuildID string `json:"guild_id"`
	OwnerID string `json:"owner_id"`
}

type createChannelResponse struct {
	ChannelRef string `json:"channel_ref"`
}

func (c *Client) CreateSlotChannel(ctx context.Context, spec contract.ChannelSpec) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/channels", createChannelRequest{
		Name:    spec.Name,
		GuildID: spec.GuildID,
		OwnerID: spec.OwnerID,
	})
	if err != nil {
		return "", fmt.Errorf("create channel: %w", err)
	}
	var resp createChannelResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("create channel: decode response: %w", err)
	}
	if resp.ChannelRef == "" {
		return "", fmt.Errorf("create channel: adapter returned no channel ref")
	}
	return resp.ChannelRef, nil
}

func (c *Client) RevokeAccess(ctx context.Context, channelRef, ownerID string) error {
	path := "/channels/" + url.PathEscape(channelRef) + "/revoke"
	_, err := c.do(ctx, http.MethodPost, path, map[string]string{"owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("revoke access: %w", err)
	}
	return nil
}

// DeleteChannel is idempotent: the adapter answers 404 for a channel that
// is already gone, and that counts as success here.
func (c *Client) DeleteChannel(ctx context.Context, channelRef string) error {
	path := "/channels/" + url.PathEscape(channelRef)
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	return nil
}

func (c *Client) SendDirect(ctx context.Context, userID, message string) error {
	_, err := c.do(ctx, http.MethodPost, "/dm", map[string]string{
		"user_id": userID,
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("send direct message: %w", err)
	}
	return nil
}

// statusError keeps the HTTP status around so callers can special-case 404.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("adapter responded %d: %s", e.status, e.body)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.status == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{status: resp.StatusCode, body: string(body)}
	}
	return body, nil
}
