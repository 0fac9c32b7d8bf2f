// Package helpdesk is a SalesIQ live-chat API client for exporting chat
// transcripts: OAuth token refresh, paginated chat listing, and per-chat
// conversation fetches with rate-limit aware retries.
package helpdesk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"triage/internal/logging"
)

// Production endpoints; overridable for tests and other data centers.
const (
	DefaultTokenURL = "https://accounts.zoho.com/oauth/v2/token"
	DefaultBaseURL  = "https://salesiq.zoho.com/api/v2"
)

const (
	defaultPageSize = 100
	defaultDelay    = time.Second
)

// ErrMissingCredentials reports that one of the three OAuth settings is
// unset. It is checked before any network call.
var ErrMissingCredentials = errors.New("missing helpdesk credentials")

// ErrRateLimited reports that the retry policy gave up on a request the
// API kept answering with 429. The default policy never gives up, so
// this only surfaces under CappedRetries.
var ErrRateLimited = errors.New("rate limited")

// Config holds SalesIQ connection settings.
type Config struct {
	TokenURL     string // OAuth token endpoint
	BaseURL      string // e.g. https://salesiq.zoho.com/api/v2
	ClientID     string
	ClientSecret string
	RefreshToken string

	PageSize  int           // chats per listing page
	PageDelay time.Duration // pause after each non-empty listing page
	ChatDelay time.Duration // pause between per-chat conversation fetches
}

// Client is a SalesIQ API client. NewClient fills HTTPClient, Retry and
// Sleep with production defaults; tests swap Sleep for a recorder so no
// test ever waits for real.
type Client struct {
	HTTPClient *http.Client
	Config     Config
	Retry      RetryPolicy
	Sleep      func(context.Context, time.Duration) error

	log *slog.Logger
}

// NewClient returns a client with defaults applied on top of cfg.
func NewClient(cfg Config) *Client {
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = defaultDelay
	}
	if cfg.ChatDelay <= 0 {
		cfg.ChatDelay = defaultDelay
	}
	return &Client{
		HTTPClient: http.DefaultClient,
		Config:     cfg,
		Retry:      FixedDelay{Delay: DefaultRetryDelay},
		Sleep:      sleepContext,
		log:        logging.New("helpdesk"),
	}
}

func (c *Client) checkCredentials() error {
	if c.Config.ClientID == "" || c.Config.ClientSecret == "" || c.Config.RefreshToken == "" {
		return fmt.Errorf("%w: set ZOHO_CLIENT_ID, ZOHO_CLIENT_SECRET and ZOHO_REFRESH_TOKEN", ErrMissingCredentials)
	}
	return nil
}

// RefreshAccessToken exchanges the long-lived refresh token for a fresh
// access token.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, error) {
	if err := c.checkCredentials(); err != nil {
		return "", err
	}
	form := url.Values{
		"refresh_token": {c.Config.RefreshToken},
		"client_id":     {c.Config.ClientID},
		"client_secret": {c.Config.ClientSecret},
		"grant_type":    {"refresh_token"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("refresh token %s: %s", resp.Status, string(body))
	}
	var out struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if out.AccessToken == "" {
		if out.Error != "" {
			return "", fmt.Errorf("refresh token: %s", out.Error)
		}
		return "", errors.New("refresh token: no access_token in response")
	}
	return out.AccessToken, nil
}

// envelope is the API response wrapper; code 0 means success.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// getJSON performs an authorized GET and decodes the envelope payload
// into out. A 429 consults the retry policy and reissues the identical
// request; any other non-200 status is an error.
func (c *Client) getJSON(ctx context.Context, token, rawURL string, out any) error {
	attempt := 0
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return fmt.Errorf("new request: %w", err)
		}
		req.Header.Set("Authorization", "Zoho-oauthtoken "+token)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("do request: %w", err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			attempt++
			delay, ok := c.Retry.NextDelay(attempt)
			if !ok {
				return fmt.Errorf("%w after %d attempts: %s", ErrRateLimited, attempt, rawURL)
			}
			if err := c.Sleep(ctx, delay); err != nil {
				return err
			}
			continue
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("get %s: %s", resp.Status, string(body))
		}
		var env envelope
		err = json.NewDecoder(resp.Body).Decode(&env)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if env.Code != 0 {
			return fmt.Errorf("api error %d: %s", env.Code, env.Message)
		}
		if out != nil && len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return fmt.Errorf("decode data: %w", err)
			}
		}
		return nil
	}
}

// chatRef is the slice of a chat listing entry we care about.
type chatRef struct {
	ID string `json:"id"`
}

// ListChatIDs pages through the chat listing and returns every chat ID.
// Paging starts at index 1 and advances by PageSize until a page comes
// back empty. A transient page failure ends the listing early and
// returns the IDs gathered so far; only context cancellation and an
// exhausted retry policy abort outright.
func (c *Client) ListChatIDs(ctx context.Context, token string) ([]string, error) {
	var ids []string
	start := 1
	for {
		u := fmt.Sprintf("%s/chats?limit=%d&start_index=%d", c.Config.BaseURL, c.Config.PageSize, start)
		var page []chatRef
		if err := c.getJSON(ctx, token, u, &page); err != nil {
			if ctx.Err() != nil || errors.Is(err, ErrRateLimited) {
				return nil, fmt.Errorf("list chats at index %d: %w", start, err)
			}
			c.log.Warn("chat listing stopped early", "start_index", start, "chats", len(ids), "error", err)
			return ids, nil
		}
		if len(page) == 0 {
			return ids, nil
		}
		for _, ch := range page {
			ids = append(ids, ch.ID)
		}
		start += c.Config.PageSize
		if err := c.Sleep(ctx, c.Config.PageDelay); err != nil {
			return nil, err
		}
	}
}

// Transcript is one chat's raw conversation document. The shape is kept
// loose on purpose: the API nests the message list under "conversation"
// and we only ever touch the fields we redact.
type Transcript map[string]any

// FetchConversation fetches the full message history of one chat.
func (c *Client) FetchConversation(ctx context.Context, token, chatID string) (Transcript, error) {
	u := fmt.Sprintf("%s/chats/%s/conversation", c.Config.BaseURL, chatID)
	var t Transcript
	if err := c.getJSON(ctx, token, u, &t); err != nil {
		return nil, fmt.Errorf("chat %s: %w", chatID, err)
	}
	return t, nil
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
