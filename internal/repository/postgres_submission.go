package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// GormSubmissionStore is a GORM-based implementation of SubmissionStore
type GormSubmissionStore struct {
	db *gorm.DB
}

// NewGormSubmissionStore initializes a new GormSubmissionStore
func NewGormSubmissionStore(db *gorm.DB) SubmissionStore {
	return &GormSubmissionStore{db: db}
}

func (s *GormSubmissionStore) FindByCycle(ctx context.Context, cycleID domain.CycleID) ([]domain.Submission, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []Submission
	err := s.db.WithContext(ctx).
		Where("cycle_id = ?", uint(cycleID)).
		Order("submitted_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		submission, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (s *GormSubmissionStore) FindByCycleAndMember(ctx context.Context, cycleID domain.CycleID, memberID domain.MemberID) (*domain.Submission, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var row Submission
	err := s.db.WithContext(ctx).
		Where("cycle_id = ? AND member_id = ?", uint(cycleID), uint(memberID)).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return row.ToDomain()
}

func (s *GormSubmissionStore) Save(ctx context.Context, submission domain.Submission) (*domain.Submission, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	row := ToGormSubmission(&submission)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, translate(err)
	}
	return row.ToDomain()
}
