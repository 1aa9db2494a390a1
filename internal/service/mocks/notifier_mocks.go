package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

// Notifier mock
type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifySubmissionCreated(ctx context.Context, n service.SubmissionNotification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *Notifier) NotifyReminder(ctx context.Context, n service.ReminderNotification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *Notifier) NotifyStatus(ctx context.Context, n service.StatusNotification) error {
	return m.Called(ctx, n).Error(0)
}
