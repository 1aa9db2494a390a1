package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// GormMemberStore is a GORM-based implementation of MemberStore
type GormMemberStore struct {
	db *gorm.DB
}

// NewGormMemberStore initializes a new GormMemberStore
func NewGormMemberStore(db *gorm.DB) MemberStore {
	return &GormMemberStore{db: db}
}

func (s *GormMemberStore) FindByID(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	return s.findOne(ctx, "id = ?", uint(id))
}

func (s *GormMemberStore) FindByGithubUsername(ctx context.Context, username string) (*domain.Member, error) {
	return s.findOne(ctx, "github_username = ?", username)
}

func (s *GormMemberStore) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Member, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var member Member
	if err := s.db.WithContext(ctx).Where(query, args...).Limit(1).Find(&member).Error; err != nil {
		return nil, err
	}
	if member.ID == 0 {
		return nil, nil
	}
	return member.ToDomain(), nil
}

func (s *GormMemberStore) FindMembersByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Member, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []Member
	err := s.db.WithContext(ctx).
		Joins("JOIN generation_members ON generation_members.member_id = members.id").
		Where("generation_members.generation_id = ?", uint(generationID)).
		Order("members.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return membersToDomain(rows), nil
}

func (s *GormMemberStore) FindAll(ctx context.Context, page Page) ([]domain.Member, PageInfo, error) {
	if err := checkContext(ctx); err != nil {
		return nil, PageInfo{}, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&Member{}).Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	queryInfo, offset := getPaginationInfo(page)

	var rows []Member
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(queryInfo.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return membersToDomain(rows), getPagingInfo(queryInfo, total, len(rows)), nil
}

func (s *GormMemberStore) Save(ctx context.Context, member domain.Member) (*domain.Member, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	row := ToGormMember(&member)
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, translate(err)
	}
	return row.ToDomain(), nil
}

// AddToGeneration is idempotent.
func (s *GormMemberStore) AddToGeneration(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	link := GenerationMember{GenerationID: uint(generationID), MemberID: uint(memberID)}
	return s.db.WithContext(ctx).
		Where(&GenerationMember{GenerationID: link.GenerationID, MemberID: link.MemberID}).
		FirstOrCreate(&link).Error
}

func (s *GormMemberStore) IsInGeneration(ctx context.Context, generationID domain.GenerationID, memberID domain.MemberID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&GenerationMember{}).
		Where("generation_id = ? AND member_id = ?", uint(generationID), uint(memberID)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func membersToDomain(rows []Member) []domain.Member {
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, *row.ToDomain())
	}
	return members
}
