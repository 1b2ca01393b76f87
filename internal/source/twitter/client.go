package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/net/html"

	"twitterui/internal/domain"
)

const userAgent = "TwitterUI/1.0"

// Config holds API client configuration.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client talks to the timeline API with HTTP basic auth.
type Client struct {
	http    *limitedDoer
	baseURL string
	logger  *slog.Logger
}

// New creates a new API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		http: newLimitedDoer(&http.Client{
			Timeout: cfg.Timeout,
		}, cfg.RequestsPerSecond, cfg.Burst),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger.With("component", "twitter"),
	}
}

// Authenticate verifies the credentials and returns a session for them.
func (c *Client) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if !creds.Complete() {
		return domain.Session{}, domain.ErrAuth
	}

	session := domain.Session{Login: creds.Login, Password: creds.Password}

	var user apiUser
	if err := c.do(ctx, session, http.MethodGet, "/account/verify_credentials.json", nil, &user); err != nil {
		return domain.Session{}, err
	}

	session.ScreenName = user.ScreenName
	c.logger.Info("authenticated", "login", creds.Login, "screen_name", user.ScreenName)

	return session, nil
}

// FetchFriendsTimeline returns the friends timeline, newest first.
func (c *Client) FetchFriendsTimeline(ctx context.Context, session domain.Session) (domain.Timeline, error) {
	var statuses []apiStatus
	if err := c.do(ctx, session, http.MethodGet, "/statuses/friends_timeline.json", nil, &statuses); err != nil {
		return nil, err
	}

	timeline := c.transform(statuses)
	c.logger.Debug("fetched timeline", "statuses", len(timeline))

	return timeline, nil
}

// PostStatus publishes text as a new status.
func (c *Client) PostStatus(ctx context.Context, session domain.Session, text string) error {
	form := url.Values{"status": {text}}
	if err := c.do(ctx, session, http.MethodPost, "/statuses/update.json", form, nil); err != nil {
		return err
	}

	c.logger.Info("posted status", "length", len([]rune(text)))
	return nil
}

func (c *Client) do(ctx context.Context, session domain.Session, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(session.Login, session.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrAuth, c.errorMessage(resp))
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, c.errorMessage(resp))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) errorMessage(resp *http.Response) string {
	var apiErr apiError
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr); err != nil || apiErr.Error == "" {
		return resp.Status
	}
	return apiErr.Error
}

func (c *Client) transform(statuses []apiStatus) domain.Timeline {
	return lo.FilterMap(statuses, func(s apiStatus, _ int) (domain.Status, bool) {
		createdAt, err := parseCreatedAt(s.CreatedAt)
		if err != nil {
			c.logger.Warn("failed to parse date",
				"id", s.ID,
				"created_at", s.CreatedAt,
			)
			return domain.Status{}, false
		}

		return domain.Status{
			Author:    s.User.ScreenName,
			Text:      html.UnescapeString(s.Text),
			CreatedAt: createdAt,
			AvatarURL: s.User.ProfileImageURL,
		}, true
	})
}

func parseCreatedAt(v string) (time.Time, error) {
	for _, layout := range []string{time.RubyDate, time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", v)
}
