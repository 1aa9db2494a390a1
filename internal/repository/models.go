package repository

import (
	"fmt"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// Generation is the gorm row for domain.Generation.
type Generation struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	StartedAt time.Time
	IsActive  bool `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Cycle struct {
	ID             uint `gorm:"primaryKey"`
	GenerationID   uint `gorm:"uniqueIndex:idx_generation_week;not null"`
	Week           int  `gorm:"uniqueIndex:idx_generation_week;not null"`
	StartDate      time.Time
	EndDate        time.Time `gorm:"index"`
	GithubIssueURL *string   `gorm:"uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Member struct {
	ID             uint   `gorm:"primaryKey"`
	GithubUsername string `gorm:"uniqueIndex;not null"`
	DiscordID      *string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GenerationMember links a member to a generation.
type GenerationMember struct {
	ID           uint `gorm:"primaryKey"`
	GenerationID uint `gorm:"uniqueIndex:idx_generation_member;not null"`
	MemberID     uint `gorm:"uniqueIndex:idx_generation_member;not null"`
	CreatedAt    time.Time
}

type Submission struct {
	ID              uint   `gorm:"primaryKey"`
	CycleID         uint   `gorm:"uniqueIndex:idx_cycle_member;not null"`
	MemberID        uint   `gorm:"uniqueIndex:idx_cycle_member;not null"`
	BlogURL         string `gorm:"not null"`
	SubmittedAt     time.Time
	GithubCommentID *string
	CreatedAt       time.Time
}

// Models lists every table for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&Generation{}, &Cycle{}, &Member{}, &GenerationMember{}, &Submission{}}
}

func (g *Generation) ToDomain() *domain.Generation {
	return &domain.Generation{
		ID:        domain.GenerationID(g.ID),
		Name:      g.Name,
		StartedAt: g.StartedAt,
		IsActive:  g.IsActive,
	}
}

func ToGormGeneration(g *domain.Generation) *Generation {
	return &Generation{
		ID:        uint(g.ID),
		Name:      g.Name,
		StartedAt: g.StartedAt,
		IsActive:  g.IsActive,
	}
}

func (c *Cycle) ToDomain() *domain.Cycle {
	return &domain.Cycle{
		ID:             domain.CycleID(c.ID),
		GenerationID:   domain.GenerationID(c.GenerationID),
		Week:           c.Week,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		GithubIssueURL: c.GithubIssueURL,
	}
}

func ToGormCycle(c *domain.Cycle) *Cycle {
	return &Cycle{
		ID:             uint(c.ID),
		GenerationID:   uint(c.GenerationID),
		Week:           c.Week,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		GithubIssueURL: c.GithubIssueURL,
	}
}

func (m *Member) ToDomain() *domain.Member {
	return &domain.Member{
		ID:             domain.MemberID(m.ID),
		GithubUsername: m.GithubUsername,
		DiscordID:      m.DiscordID,
		Name:           m.Name,
	}
}

func ToGormMember(m *domain.Member) *Member {
	return &Member{
		ID:             uint(m.ID),
		GithubUsername: m.GithubUsername,
		DiscordID:      m.DiscordID,
		Name:           m.Name,
	}
}

// ToDomain revalidates the stored url and comment id.
func (s *Submission) ToDomain() (*domain.Submission, error) {
	blogURL, err := domain.NewBlogURL(s.BlogURL)
	if err != nil {
		return nil, fmt.Errorf("submission %d: %w", s.ID, err)
	}

	var commentID *domain.GithubCommentID
	if s.GithubCommentID != nil {
		id, err := domain.NewGithubCommentID(*s.GithubCommentID)
		if err != nil {
			return nil, fmt.Errorf("submission %d: %w", s.ID, err)
		}
		commentID = &id
	}

	return &domain.Submission{
		ID:              domain.SubmissionID(s.ID),
		CycleID:         domain.CycleID(s.CycleID),
		MemberID:        domain.MemberID(s.MemberID),
		BlogURL:         blogURL,
		SubmittedAt:     s.SubmittedAt,
		GithubCommentID: commentID,
	}, nil
}

func ToGormSubmission(s *domain.Submission) *Submission {
	var commentID *string
	if s.GithubCommentID != nil {
		v := s.GithubCommentID.String()
		commentID = &v
	}
	return &Submission{
		ID:              uint(s.ID),
		CycleID:         uint(s.CycleID),
		MemberID:        uint(s.MemberID),
		BlogURL:         s.BlogURL.String(),
		SubmittedAt:     s.SubmittedAt,
		GithubCommentID: commentID,
	}
}
