package github

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

const (
	EventHeader     = "X-GitHub-Event"
	SignatureHeader = "X-Hub-Signature-256"

	EventIssueComment = "issue_comment"
	EventIssues       = "issues"

	dateLayout  = "2006-01-02"
	defaultSpan = 7 * 24 * time.Hour
)

var (
	linkPattern = regexp.MustCompile(`https?://[^\s<>()\[\]"'` + "`" + `]+`)
	weekPattern = regexp.MustCompile(`(?i)week\s*#?\s*(\d+)`)
	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

type user struct {
	Login string `json:"login"`
}

type issue struct {
	HTMLURL   string    `json:"html_url"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentEvent is the subset of an issue_comment webhook we read.
type CommentEvent struct {
	Action  string `json:"action"`
	Issue   issue  `json:"issue"`
	Comment struct {
		ID   int64  `json:"id"`
		Body string `json:"body"`
		User user   `json:"user"`
	} `json:"comment"`
}

// IssueEvent is the subset of an issues webhook we read.
type IssueEvent struct {
	Action string `json:"action"`
	Issue  issue  `json:"issue"`
}

var _ service.GithubParser = (*WebhookParser)(nil)

// WebhookParser implements service.GithubParser for GitHub's JSON webhook payloads.
type WebhookParser struct {
	Location *time.Location
}

func NewWebhookParser(loc *time.Location) *WebhookParser {
	if loc == nil {
		loc = time.UTC
	}
	return &WebhookParser{Location: loc}
}

// ParseComment reads the commenter, the first link in the comment body and the issue it was posted on.
func (p *WebhookParser) ParseComment(_ context.Context, raw []byte) (*service.ParsedComment, error) {
	var event CommentEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidPayload, err)
	}
	if event.Comment.ID == 0 || event.Comment.User.Login == "" || event.Issue.HTMLURL == "" {
		return nil, fmt.Errorf("%w: comment payload is missing id, user or issue url", service.ErrInvalidPayload)
	}

	link := FirstLink(event.Comment.Body)
	if link == "" {
		return nil, service.ErrNoBlogURL
	}

	return &service.ParsedComment{
		GithubUsername: event.Comment.User.Login,
		BlogURL:        link,
		CommentID:      strconv.FormatInt(event.Comment.ID, 10),
		IssueURL:       event.Issue.HTMLURL,
	}, nil
}

// ParseIssue reads the week number from the issue title and the cycle window from the
// first two YYYY-MM-DD dates in the title or body. Without dates the window is the
// week following the issue's creation. The end date is inclusive.
func (p *WebhookParser) ParseIssue(_ context.Context, raw []byte) (*service.ParsedIssue, error) {
	var event IssueEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidPayload, err)
	}
	if event.Issue.HTMLURL == "" {
		return nil, fmt.Errorf("%w: issue payload has no html_url", service.ErrInvalidPayload)
	}

	match := weekPattern.FindStringSubmatch(event.Issue.Title)
	if match == nil {
		return nil, fmt.Errorf("%w: issue title %q names no week", service.ErrInvalidPayload, event.Issue.Title)
	}
	week, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: week %q: %v", service.ErrInvalidPayload, match[1], err)
	}

	start, end, err := p.window(event.Issue)
	if err != nil {
		return nil, err
	}

	return &service.ParsedIssue{
		Week:           week,
		StartDate:      start,
		EndDate:        end,
		GithubIssueURL: event.Issue.HTMLURL,
	}, nil
}

func (p *WebhookParser) window(is issue) (time.Time, time.Time, error) {
	dates := datePattern.FindAllString(is.Title+"\n"+is.Body, 2)
	if len(dates) < 2 {
		if is.CreatedAt.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: issue has neither dates nor created_at", service.ErrInvalidPayload)
		}
		start := is.CreatedAt.In(p.Location)
		return start, start.Add(defaultSpan), nil
	}

	start, err := time.ParseInLocation(dateLayout, dates[0], p.Location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date: %v", service.ErrInvalidPayload, err)
	}
	last, err := time.ParseInLocation(dateLayout, dates[1], p.Location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date: %v", service.ErrInvalidPayload, err)
	}
	end := last.AddDate(0, 0, 1).Add(-time.Second)
	return start, end, nil
}

// FirstLink returns the first http(s) link in text with trailing punctuation removed.
func FirstLink(text string) string {
	link := linkPattern.FindString(text)
	return strings.TrimRight(link, ".,;:!?")
}

// VerifySignature checks an X-Hub-Signature-256 header against the payload.
func VerifySignature(secret string, payload []byte, header string) bool {
	sig, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(got, mac.Sum(nil))
}
