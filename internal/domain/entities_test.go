package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fmtWrap(err error) error { return fmt.Errorf("outer: %w", err) }

func TestNewCycle(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)

	c, err := NewCycle(1, 1, start, end, nil)
	require.NoError(t, err)
	assert.Equal(t, "Week 1", c.Name())
	assert.Equal(t, end, c.Deadline())
	assert.True(t, c.Contains(start))
	assert.True(t, c.Contains(end))
	assert.False(t, c.Contains(end.Add(time.Second)))

	_, err = NewCycle(1, 1, end, start, nil)
	assert.True(t, HasCode(err, CodeInvalidCycle))

	_, err = NewCycle(1, 1, start, start, nil)
	assert.True(t, HasCode(err, CodeInvalidCycle))

	_, err = NewCycle(1, 0, start, end, nil)
	assert.True(t, HasCode(err, CodeInvalidCycle))
}

func TestCycle_WithIssueURL(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	c, err := NewCycle(1, 2, start, start.Add(time.Hour), nil)
	require.NoError(t, err)

	backfilled := c.WithIssueURL("https://github.com/org/repo/issues/2")
	assert.Nil(t, c.GithubIssueURL)
	require.NotNil(t, backfilled.GithubIssueURL)
	assert.Equal(t, "https://github.com/org/repo/issues/2", *backfilled.GithubIssueURL)
}

func TestNewGeneration(t *testing.T) {
	g, err := NewGeneration("  Gen 5 ", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Gen 5", g.Name)
	assert.False(t, g.IsActive)

	g.Activate()
	assert.True(t, g.IsActive)
	g.Deactivate()
	assert.False(t, g.IsActive)

	_, err = NewGeneration("   ", time.Now())
	assert.True(t, HasCode(err, CodeInvalidGeneration))
}

func TestNewMember(t *testing.T) {
	m, err := NewMember("octocat", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "octocat", m.Name)

	_, err = NewMember(" ", "Someone", nil)
	assert.True(t, HasCode(err, CodeInvalidMember))
}

func TestNewSubmission(t *testing.T) {
	blog, err := NewBlogURL("https://example.com/p")
	require.NoError(t, err)

	s, err := NewSubmission(1, 2, blog, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, CycleID(1), s.CycleID)

	_, err = NewSubmission(0, 2, blog, nil, time.Now())
	assert.True(t, HasCode(err, CodeInvalidSubmission))

	_, err = NewSubmission(1, 2, BlogURL{}, nil, time.Now())
	assert.True(t, HasCode(err, CodeInvalidSubmission))
}
