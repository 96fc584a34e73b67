// Package api implements the remote store client: one authenticated HTTP call
// per logical operation against the function gateway.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/pkg/api"
)

const (
	// DefaultTimeout потолок времени одного вызова
	DefaultTimeout = 20 * time.Second
	// DefaultSlowThreshold порог "необычно медленного" успешного вызова
	DefaultSlowThreshold = 8 * time.Second

	functionsPrefix = "/functions/v1"
)

//go:generate moq -out token_source_mock.go . TokenSource

// TokenSource resolves the bearer token for each call.
// An empty token with a nil error means "no session": the call goes out anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Options настройки клиента
type Options struct {
	Tokens        TokenSource
	Clock         clockwork.Clock
	HTTPClient    *http.Client
	OnSlow        func(op string, elapsed time.Duration) // наблюдатель медленных вызовов
	AnonKey       string
	Timeout       time.Duration
	SlowThreshold time.Duration
}

// Client представляет HTTP клиент для взаимодействия с gateway
type Client struct {
	tokens        TokenSource
	clock         clockwork.Clock
	httpClient    *http.Client
	onSlow        func(op string, elapsed time.Duration)
	baseURL       string
	anonKey       string
	timeout       time.Duration
	slowThreshold time.Duration
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts Options) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		anonKey:       opts.AnonKey,
		tokens:        opts.Tokens,
		clock:         opts.Clock,
		httpClient:    opts.HTTPClient,
		onSlow:        opts.OnSlow,
		timeout:       opts.Timeout,
		slowThreshold: opts.SlowThreshold,
	}
	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.slowThreshold <= 0 {
		c.slowThreshold = DefaultSlowThreshold
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Заголовки авторизации переносим на редирект
				if len(via) > 0 {
					for _, h := range []string{"Authorization", "apikey"} {
						if v := via[0].Header.Get(h); v != "" {
							req.Header.Set(h, v)
						}
					}
				}
				return nil
			},
		}
	}
	return c
}

// call описывает один логический вызов
type call struct {
	body    any
	result  any
	headers map[string]string
	op      string
	method  string
	path    string
	anon    bool // не подставлять bearer token
}

// do выполняет HTTP запрос и разбирает конверт ответа
func (c *Client) do(ctx context.Context, cl call) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if cl.body != nil {
		jsonData, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request body: %w", cl.op, err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+functionsPrefix+cl.path, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", cl.op, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range cl.headers {
		req.Header.Set(k, v)
	}

	if !cl.anon && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", cl.op, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: cl.op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: cl.op, Err: err}
	}

	if err := c.decode(cl, resp.StatusCode, respBody); err != nil {
		return err
	}

	if elapsed := c.clock.Since(started); elapsed > c.slowThreshold && c.onSlow != nil {
		c.onSlow(cl.op, elapsed)
	}

	return nil
}

func (c *Client) decode(cl call, status int, body []byte) error {
	var env api.RawEnvelope
	decodeErr := json.Unmarshal(body, &env)

	reason := env.Reason()
	if decodeErr != nil {
		reason = strings.TrimSpace(string(body))
	}
	if reason == "" {
		reason = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthError{Op: cl.op, Status: status, Message: reason}
	case status < 200 || status >= 300:
		return &BusinessError{Op: cl.op, Status: status, Message: reason, Unparsed: decodeErr != nil}
	case decodeErr != nil:
		return fmt.Errorf("%s: failed to decode response: %w", cl.op, decodeErr)
	case !env.Success:
		return &BusinessError{Op: cl.op, Status: status, Message: reason}
	}

	if cl.result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, cl.result); err != nil {
			return fmt.Errorf("%s: failed to decode response data: %w", cl.op, err)
		}
	}
	return nil
}
