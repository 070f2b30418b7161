package records

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// FileMaker session tokens are valid for 15 minutes of inactivity; refresh a
// minute early.
const tokenTTL = 14 * time.Minute

// TokenProvider yields a valid FileMaker Data API bearer token, caching it
// until expiry. Instances are owned by the client that composes them; there
// is no process-wide token state.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	// Invalidate discards the cached token so the next call fetches a
	// fresh one. Used after a 401 from the Data API.
	Invalidate()
}

// sessionTokenProvider obtains tokens from the Data API sessions endpoint
// with Basic auth.
type sessionTokenProvider struct {
	baseURL  string
	database string
	username string
	password string
	client   *http.Client
	now      func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewSessionTokenProvider(baseURL, database, username, password string) TokenProvider {
	return &sessionTokenProvider{
		baseURL:  baseURL,
		database: database,
		username: username,
		password: password,
		client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
	}
}

func (p *sessionTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Before(p.expiresAt) {
		return p.token, nil
	}

	token, err := p.fetchToken(ctx)
	if err != nil {
		return "", err
	}
	p.token = token
	p.expiresAt = p.now().Add(tokenTTL)
	return token, nil
}

func (p *sessionTokenProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.expiresAt = time.Time{}
}

func (p *sessionTokenProvider) fetchToken(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/fmi/data/v1/databases/%s/sessions", p.baseURL, p.database)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", fmt.Errorf("failed to build session request: %w", err)
	}
	auth := base64.StdEncoding.EncodeToString([]byte(p.username + ":" + p.password))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("session request returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Response struct {
			Token string `json:"token"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if payload.Response.Token == "" {
		return "", fmt.Errorf("session response carried no token")
	}
	return payload.Response.Token, nil
}
