// Package bus wraps the NATS connection used for the event-driven analysis
// pipeline.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects prism publishes and subscribes on.
const (
	SubjectChatMessageStored = "prism.chat.message.stored"
	SubjectPostsFetched      = "prism.social.posts.fetched"
	SubjectProfileUpdated    = "prism.profile.updated"
	SubjectRegistered        = "prism.agent.registered"
)

// ProfileUpdated is emitted after an analysis completes and the style cache
// or run log was written.
type ProfileUpdated struct {
	UserID        string `json:"user_id"`
	Source        string `json:"source"` // "chat" or "social"
	Platform      string `json:"platform,omitempty"`
	SampleSize    int    `json:"sample_size"`
	Vernacular    string `json:"vernacular"`
	Formality     string `json:"formality"`
	VocabVersion  string `json:"vocab_version"`
	PostsAnalyzed int    `json:"posts_analyzed,omitempty"`
}

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Subscribe(subject string, handler func(subject string, data []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
