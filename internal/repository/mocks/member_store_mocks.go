package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository"
)

// MemberStore mock
type MemberStore struct {
	mock.Mock
}

func (m *MemberStore) FindByID(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	args := m.Called(ctx, id)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *MemberStore) FindByGithubUsername(ctx context.Context, username string) (*domain.Member, error) {
	args := m.Called(ctx, username)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *MemberStore) FindMembersByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Member, error) {
	args := m.Called(ctx, generationID)
	members, _ := args.Get(0).([]domain.Member)
	return members, args.Error(1)
}

func (m *MemberStore) FindAll(ctx context.Context, page repository.Page) ([]domain.Member, repository.PageInfo, error) {
	args := m.Called(ctx, page)
	members, _ := args.Get(0).([]domain.Member)
	info, _ := args.Get(1).(repository.PageInfo)
	return members, info, args.Error(2)
}

func (m *MemberStore) Save(ctx context.Context, member domain.Member) (*domain.Member, error) {
	args := m.Called(ctx, member)
	saved, _ := args.Get(0).(*domain.Member)
	return saved, args.Error(1)
}

func (m *MemberStore) IsInGeneration(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) (bool, error) {
	args := m.Called(ctx, generationID, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MemberStore) AddToGeneration(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) error {
	args := m.Called(ctx, generationID, memberID)
	return args.Error(0)
}
