package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
	"github.com/just-nibble/cycle-tracker/pkg/validator"
)

type MemberUsecase interface {
	Add(ctx context.Context, input dtos.MemberInput) (*domain.Member, error)
	Join(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) error
	List(ctx context.Context, page repository.Page) ([]domain.Member, repository.PageInfo, error)
	ListByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Member, error)
}

type memberUsecase struct {
	memberStore     repository.MemberStore
	generationStore repository.GenerationStore
}

func NewMemberUsecase(memberStore repository.MemberStore, generationStore repository.GenerationStore) MemberUsecase {
	return &memberUsecase{
		memberStore:     memberStore,
		generationStore: generationStore,
	}
}

func (uc *memberUsecase) Add(ctx context.Context, input dtos.MemberInput) (*domain.Member, error) {
	member, err := domain.NewMember(input.GithubUsername, input.Name, input.DiscordID)
	if err != nil {
		return nil, err
	}
	if !validator.IsGithubUsername(member.GithubUsername) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGithubUsername, member.GithubUsername)
	}

	existing, err := uc.memberStore.FindByGithubUsername(ctx, member.GithubUsername)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberExists
	}

	if input.GenerationID != nil {
		if err := uc.requireGeneration(ctx, domain.GenerationID(*input.GenerationID)); err != nil {
			return nil, err
		}
	}

	saved, err := uc.memberStore.Save(ctx, *member)
	if err != nil {
		if errors.Is(err, errcodes.ErrDuplicateRecord) {
			return nil, ErrMemberExists
		}
		return nil, err
	}

	if input.GenerationID != nil {
		if err := uc.memberStore.AddToGeneration(ctx, domain.GenerationID(*input.GenerationID), saved.ID); err != nil {
			return nil, err
		}
	}

	return saved, nil
}

func (uc *memberUsecase) Join(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) error {
	if err := uc.requireGeneration(ctx, generationID); err != nil {
		return err
	}

	member, err := uc.memberStore.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	return uc.memberStore.AddToGeneration(ctx, generationID, memberID)
}

func (uc *memberUsecase) List(ctx context.Context, page repository.Page) ([]domain.Member, repository.PageInfo, error) {
	return uc.memberStore.FindAll(ctx, page)
}

func (uc *memberUsecase) ListByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Member, error) {
	if err := uc.requireGeneration(ctx, generationID); err != nil {
		return nil, err
	}
	return uc.memberStore.FindMembersByGeneration(ctx, generationID)
}

func (uc *memberUsecase) requireGeneration(ctx context.Context, id domain.GenerationID) error {
	generation, err := uc.generationStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if generation == nil {
		return ErrGenerationNotFound
	}
	return nil
}
