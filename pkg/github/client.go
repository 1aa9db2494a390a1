package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

const (
	DefaultBaseURL = "https://api.github.com"
	perPage        = 100
)

// ErrRateLimited is returned when GitHub refuses a request for quota reasons.
var ErrRateLimited = errors.New("github rate limit exceeded")

var _ service.CommentSource = (*Client)(nil)

// Client is a small GitHub REST client for reading issue comments.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	token      string
}

func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    DefaultBaseURL,
		token:      token,
	}
}

type apiComment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      user      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ListIssueComments fetches every comment of the issue behind issueURL, page by page.
func (c *Client) ListIssueComments(ctx context.Context, issueURL string) ([]service.IssueComment, error) {
	owner, repo, number, err := SplitIssueURL(issueURL)
	if err != nil {
		return nil, err
	}

	var comments []service.IssueComment
	for page := 1; ; page++ {
		batch, err := c.fetchCommentPage(ctx, owner, repo, number, page)
		if err != nil {
			return nil, err
		}
		for _, ac := range batch {
			comments = append(comments, service.IssueComment{
				CommentID:      strconv.FormatInt(ac.ID, 10),
				GithubUsername: ac.User.Login,
				BlogURL:        FirstLink(ac.Body),
				CreatedAt:      ac.CreatedAt,
			})
		}
		if len(batch) < perPage {
			return comments, nil
		}
	}
}

func (c *Client) fetchCommentPage(ctx context.Context, owner, repo string, number, page int) ([]apiComment, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments?page=%d&per_page=%d",
		c.BaseURL, owner, repo, number, page, perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue comments: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests ||
		(resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0") {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch issue comments: received status code %d", resp.StatusCode)
	}

	var batch []apiComment
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to decode issue comments: %w", err)
	}
	return batch, nil
}

// SplitIssueURL breaks https://github.com/<owner>/<repo>/issues/<n> into its parts.
func SplitIssueURL(issueURL string) (owner, repo string, number int, err error) {
	u, err := url.Parse(issueURL)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid issue url %q: %w", issueURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[2] != "issues" {
		return "", "", 0, fmt.Errorf("invalid issue url %q", issueURL)
	}
	number, err = strconv.Atoi(parts[3])
	if err != nil || number <= 0 {
		return "", "", 0, fmt.Errorf("invalid issue number in %q", issueURL)
	}
	return parts[0], parts[1], number, nil
}
