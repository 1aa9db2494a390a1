package domain

import (
	"fmt"
	"time"
)

// Cycle is one weekly submission period of a generation.
type Cycle struct {
	ID             CycleID
	GenerationID   GenerationID
	Week           int
	StartDate      time.Time
	EndDate        time.Time
	GithubIssueURL *string
}

func NewCycle(generationID GenerationID, week int, startDate, endDate time.Time, githubIssueURL *string) (*Cycle, error) {
	if week < 1 {
		return nil, newDomainError(CodeInvalidCycle, "week must be positive, got %d", week)
	}
	if !endDate.After(startDate) {
		return nil, newDomainError(CodeInvalidCycle, "end date %s must be after start date %s",
			endDate.Format(time.RFC3339), startDate.Format(time.RFC3339))
	}
	return &Cycle{
		GenerationID:   generationID,
		Week:           week,
		StartDate:      startDate,
		EndDate:        endDate,
		GithubIssueURL: githubIssueURL,
	}, nil
}

// Deadline is the end of the submission window.
func (c *Cycle) Deadline() time.Time { return c.EndDate }

// Name is the display name used in notifications, e.g. "Week 3".
func (c *Cycle) Name() string { return fmt.Sprintf("Week %d", c.Week) }

// Contains reports whether t falls inside the cycle, bounds included.
func (c *Cycle) Contains(t time.Time) bool {
	return !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// WithIssueURL returns a copy of the cycle with its tracking issue set.
func (c *Cycle) WithIssueURL(issueURL string) *Cycle {
	cp := *c
	cp.GithubIssueURL = &issueURL
	return &cp
}
