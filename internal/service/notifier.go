package service

import (
	"context"
	"time"
)

// Notifier delivers messages to the cohort's chat channel.
// Delivery failures are returned to the caller; retries are the implementation's concern.
type Notifier interface {
	NotifySubmissionCreated(ctx context.Context, n SubmissionNotification) error
	NotifyReminder(ctx context.Context, n ReminderNotification) error
	NotifyStatus(ctx context.Context, n StatusNotification) error
}

type SubmissionNotification struct {
	CycleName  string
	MemberName string
	BlogURL    string
}

type ReminderNotification struct {
	CycleName    string
	Deadline     time.Time
	NotSubmitted []string
}

type StatusNotification struct {
	CycleName    string
	Deadline     time.Time
	Submitted    []string
	NotSubmitted []string
}
