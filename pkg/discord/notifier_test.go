package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

// MockTransport stubs the webhook endpoint.
type MockTransport struct {
	RoundTripper func(req *http.Request) (*http.Response, error)
}

func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripper(req)
}

var deadline = time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC)

func TestNotifyReminderPostsMissingMembers(t *testing.T) {
	var got message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, time.Second, zap.NewNop())
	err := n.NotifyReminder(context.Background(), service.ReminderNotification{
		CycleName:    "Week 2",
		Deadline:     deadline,
		NotSubmitted: []string{"B", "C"},
	})

	require.NoError(t, err)
	assert.Contains(t, got.Content, "Week 2")
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Still missing (2)", got.Embeds[0].Title)
	assert.Equal(t, "- B\n- C", got.Embeds[0].Description)
}

func TestNotifyStatusSendsBothLists(t *testing.T) {
	var got message
	n := NewWebhookNotifier("https://discord.test/api/webhooks/1/abc", time.Second, zap.NewNop())
	n.HTTPClient = &http.Client{Transport: &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			_ = json.NewDecoder(req.Body).Decode(&got)
			return &http.Response{StatusCode: http.StatusNoContent, Body: io.NopCloser(bytes.NewReader(nil))}, nil
		},
	}}

	err := n.NotifyStatus(context.Background(), service.StatusNotification{
		CycleName:    "Week 2",
		Deadline:     deadline,
		Submitted:    []string{"A"},
		NotSubmitted: nil,
	})

	require.NoError(t, err)
	require.Len(t, got.Embeds, 2)
	assert.Equal(t, "- A", got.Embeds[0].Description)
	assert.Equal(t, "nobody", got.Embeds[1].Description)
}

func TestNotifySubmissionCreated(t *testing.T) {
	var got message
	n := NewWebhookNotifier("https://discord.test/api/webhooks/1/abc", time.Second, zap.NewNop())
	n.HTTPClient = &http.Client{Transport: &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			_ = json.NewDecoder(req.Body).Decode(&got)
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(nil))}, nil
		},
	}}

	err := n.NotifySubmissionCreated(context.Background(), service.SubmissionNotification{
		CycleName:  "Week 1",
		MemberName: "Alice",
		BlogURL:    "https://alice.dev/post",
	})

	require.NoError(t, err)
	assert.Equal(t, "New post from **Alice** for Week 1", got.Content)
	assert.Equal(t, "https://alice.dev/post", got.Embeds[0].URL)
}

func TestPostReportsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"You are being rate limited."}`))
	}))
	defer server.Close()

	err := NewWebhookNotifier(server.URL, time.Second, zap.NewNop()).
		NotifyReminder(context.Background(), service.ReminderNotification{CycleName: "Week 1", NotSubmitted: []string{"A"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestPostTransportError(t *testing.T) {
	n := NewWebhookNotifier("https://discord.test/api/webhooks/1/abc", time.Second, zap.NewNop())
	n.HTTPClient = &http.Client{Transport: &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}}

	err := n.NotifyReminder(context.Background(), service.ReminderNotification{CycleName: "Week 1"})

	assert.ErrorContains(t, err, "connection refused")
}

func TestPostWithoutWebhookIsNoop(t *testing.T) {
	n := NewWebhookNotifier("", time.Second, zap.NewNop())
	n.HTTPClient = &http.Client{Transport: &MockTransport{
		RoundTripper: func(req *http.Request) (*http.Response, error) {
			t.Fatal("unexpected request")
			return nil, nil
		},
	}}

	assert.NoError(t, n.NotifyReminder(context.Background(), service.ReminderNotification{CycleName: "Week 1"}))
}
