package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/session"
)

// Client performs one HTTP call per logical console operation against the
// upstream REST API. It is the only component that reads and clears the
// session store in reaction to upstream responses.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   *session.Store
}

func New(baseURL string, timeout time.Duration, store *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		store:   store,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// envelope is the upstream's loose response wrapper. Routes disagree on
// whether errors arrive under "message" or "error".
type envelope struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrMsg
}

// do runs a single upstream call. The bearer token is attached when a
// session is present. Session-invalidation phrases clear the store and
// surface as KindSessionInvalid regardless of which route returned them.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}

	var env envelope
	_ = json.Unmarshal(data, &env) // array payloads simply leave env empty

	if msg := env.text(); sessionInvalidMessages[msg] {
		log.Printf("[UPSTREAM] session invalidated by %s %s: %s", method, path, msg)
		if err := c.store.Clear(); err != nil {
			log.Println("[UPSTREAM] failed to clear session:", err)
		}
		return &Error{Kind: KindSessionInvalid, StatusCode: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindUpstream, StatusCode: resp.StatusCode, Message: env.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return malformed("unexpected response shape: " + err.Error())
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	return c.do(ctx, method, path, bytes.NewReader(body), "application/json", out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}
