// Package social fetches profiles and recent posts from the social-platform
// gateway. It is a collaborator at the analyzer's boundary: it produces
// TextRecords and categorized errors, nothing else.
package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kindred-wellness/prism/internal/analysis"
)

const defaultMaxElapsed = 30 * time.Second

type Client struct {
	baseURL       string
	token         string
	client        *http.Client
	logger        *slog.Logger
	maxElapsed    time.Duration
	retryInterval time.Duration
}

func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		token:         token,
		client:        &http.Client{Timeout: 15 * time.Second},
		logger:        logger,
		maxElapsed:    defaultMaxElapsed,
		retryInterval: backoff.DefaultInitialInterval,
	}
}

// post is the gateway's wire shape for one post.
type post struct {
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Likes     *int       `json:"likes,omitempty"`
	Comments  *int       `json:"comments,omitempty"`
	Shares    *int       `json:"shares,omitempty"`
	Mentions  []string   `json:"mentions,omitempty"`
	Hashtags  []string   `json:"hashtags,omitempty"`
	IsReply   bool       `json:"is_reply,omitempty"`
}

type postsResponse struct {
	Handle string `json:"handle"`
	Posts  []post `json:"posts"`
}

// FetchPosts retrieves a user's recent posts from one platform and converts
// them into analyzable records. Rate-limit and 5xx responses are retried with
// exponential backoff inside a bounded window; everything else fails fast
// with a categorized FetchError.
func (c *Client) FetchPosts(ctx context.Context, platform, handle string, limit int) ([]analysis.TextRecord, error) {
	endpoint := fmt.Sprintf("%s/v1/%s/users/%s/posts?limit=%d",
		c.baseURL, url.PathEscape(platform), url.PathEscape(handle), limit)

	var resp postsResponse

	operation := func() error {
		err := c.getJSON(ctx, platform, endpoint, &resp)
		var fe *FetchError
		if errors.As(err, &fe) {
			// Only rate limits and server-side failures are worth retrying.
			if fe.Category == CategoryRateLimit || fe.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.MaxElapsedTime = c.maxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}

	records := make([]analysis.TextRecord, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		rec := analysis.TextRecord{
			Text:      p.Text,
			Timestamp: p.Timestamp,
			Mentions:  p.Mentions,
			Hashtags:  p.Hashtags,
			IsReply:   p.IsReply,
		}
		if p.Likes != nil || p.Comments != nil || p.Shares != nil {
			rec.Engagement = &analysis.Engagement{
				Likes:    intOrZero(p.Likes),
				Comments: intOrZero(p.Comments),
				Shares:   intOrZero(p.Shares),
			}
		}
		records = append(records, rec)
	}

	c.logger.Debug("posts fetched", "platform", platform, "handle", handle, "count", len(records))
	return records, nil
}

func (c *Client) getJSON(ctx context.Context, platform, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		cat := CategoryUnknown
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			cat = CategoryTimeout
		}
		return &FetchError{Category: cat, Platform: platform, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &FetchError{
			Category:   categorize(resp.StatusCode),
			Platform:   platform,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Category: CategoryUnknown, Platform: platform, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func categorize(status int) Category {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CategoryAuth
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusTooManyRequests:
		return CategoryRateLimit
	case status == http.StatusGatewayTimeout:
		return CategoryTimeout
	default:
		return CategoryUnknown
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
