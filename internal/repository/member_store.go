package repository

import (
	"context"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// MemberStore persists members and their generation memberships.
type MemberStore interface {
	FindByID(ctx context.Context, id domain.MemberID) (*domain.Member, error)
	FindByGithubUsername(ctx context.Context, username string) (*domain.Member, error)
	// FindMembersByGeneration returns the generation's members ordered by member id.
	FindMembersByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Member, error)
	FindAll(ctx context.Context, page Page) ([]domain.Member, PageInfo, error)
	Save(ctx context.Context, member domain.Member) (*domain.Member, error)
	AddToGeneration(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) error
	IsInGeneration(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) (bool, error)
}
