package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/net/proxy"
)

// PollTimeout is how long the server holds a getUpdates call open
// waiting for new data, in seconds.
const PollTimeout = 300

// httpTimeout bounds every API call. It must outlast the long-poll hold.
const httpTimeout = (PollTimeout + 10) * time.Second

// Client wraps the Telegram Bot API as an update source and reply sender.
type Client struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

// NewClient authenticates against the Bot API. A nil httpClient falls
// back to a default client with the poll-aware timeout.
func NewClient(token string, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpTimeout}
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", api.Self.UserName))

	return &Client{api: api, logger: logger}, nil
}

// Poll long-polls for the next batch of updates starting at offset.
// An API-level rejection comes back as *tgbotapi.Error, which callers
// treat as fatal; any other error is a transient transport failure.
func (c *Client) Poll(ctx context.Context, offset int) ([]tgbotapi.Update, error) {
	cfg := tgbotapi.NewUpdate(offset)
	cfg.Timeout = PollTimeout

	type result struct {
		updates []tgbotapi.Update
		err     error
	}

	// The underlying client has no context support, so the call runs in
	// its own goroutine and an in-flight request is abandoned on
	// cancellation.
	ch := make(chan result, 1)
	go func() {
		updates, err := c.api.GetUpdates(cfg)
		ch <- result{updates: updates, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("get updates: %w", r.err)
		}
		return r.updates, nil
	}
}

// Send delivers a text reply to a chat.
func (c *Client) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// NewHTTPClient builds the HTTP client for the Bot API, dialing through
// a SOCKS5 proxy when addr is non-empty. login and password may be empty
// for an unauthenticated proxy.
func NewHTTPClient(addr, login, password string) (*http.Client, error) {
	if addr == "" {
		return &http.Client{Timeout: httpTimeout}, nil
	}

	var auth *proxy.Auth
	if login != "" {
		auth = &proxy.Auth{User: login, Password: password}
	}

	dialer, err := proxy.SOCKS5("tcp", addr, auth, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("create socks5 dialer: %w", err)
	}

	transport := &http.Transport{}
	if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
		transport.DialContext = contextDialer.DialContext
	} else {
		transport.Dial = dialer.Dial
	}

	return &http.Client{Transport: transport, Timeout: httpTimeout}, nil
}
