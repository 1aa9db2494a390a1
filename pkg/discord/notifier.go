package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

const deadlineLayout = "Mon Jan 2 15:04 MST"

var _ service.Notifier = (*WebhookNotifier)(nil)

// WebhookNotifier posts messages to a Discord channel webhook.
type WebhookNotifier struct {
	HTTPClient *http.Client
	webhookURL string
	log        *zap.Logger
}

func NewWebhookNotifier(webhookURL string, timeout time.Duration, log *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		HTTPClient: &http.Client{Timeout: timeout},
		webhookURL: webhookURL,
		log:        log,
	}
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Color       int    `json:"color,omitempty"`
}

type message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

const (
	colorGreen  = 0x2ecc71
	colorOrange = 0xe67e22
	colorBlue   = 0x3498db
)

func (n *WebhookNotifier) NotifySubmissionCreated(ctx context.Context, s service.SubmissionNotification) error {
	return n.post(ctx, message{
		Content: fmt.Sprintf("New post from **%s** for %s", s.MemberName, s.CycleName),
		Embeds: []embed{{
			Title: s.BlogURL,
			URL:   s.BlogURL,
			Color: colorGreen,
		}},
	})
}

func (n *WebhookNotifier) NotifyReminder(ctx context.Context, r service.ReminderNotification) error {
	return n.post(ctx, message{
		Content: fmt.Sprintf("Reminder: %s closes %s", r.CycleName, r.Deadline.Format(deadlineLayout)),
		Embeds: []embed{{
			Title:       fmt.Sprintf("Still missing (%d)", len(r.NotSubmitted)),
			Description: bulletList(r.NotSubmitted),
			Color:       colorOrange,
		}},
	})
}

func (n *WebhookNotifier) NotifyStatus(ctx context.Context, s service.StatusNotification) error {
	return n.post(ctx, message{
		Content: fmt.Sprintf("Status of %s (deadline %s)", s.CycleName, s.Deadline.Format(deadlineLayout)),
		Embeds: []embed{
			{
				Title:       fmt.Sprintf("Submitted (%d)", len(s.Submitted)),
				Description: bulletList(s.Submitted),
				Color:       colorGreen,
			},
			{
				Title:       fmt.Sprintf("Not submitted (%d)", len(s.NotSubmitted)),
				Description: bulletList(s.NotSubmitted),
				Color:       colorBlue,
			},
		},
	})
}

func (n *WebhookNotifier) post(ctx context.Context, msg message) error {
	if n.webhookURL == "" {
		n.log.Debug("discord webhook not configured, dropping message", zap.String("content", msg.Content))
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode discord message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post discord message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("failed to post discord message: received status code %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "nobody"
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
