package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// GormCycleStore is a GORM-based implementation of CycleStore
type GormCycleStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormCycleStore initializes a new GormCycleStore
func NewGormCycleStore(db *gorm.DB) CycleStore {
	return &GormCycleStore{db: db, now: time.Now}
}

func (s *GormCycleStore) FindByID(ctx context.Context, id domain.CycleID) (*domain.Cycle, error) {
	return s.findOne(ctx, s.db.WithContext(ctx).Where("id = ?", uint(id)))
}

func (s *GormCycleStore) FindByIssueURL(ctx context.Context, issueURL string) (*domain.Cycle, error) {
	return s.findOne(ctx, s.db.WithContext(ctx).Where("github_issue_url = ?", issueURL))
}

func (s *GormCycleStore) FindByGenerationAndWeek(ctx context.Context, generationID domain.GenerationID, week int) (*domain.Cycle, error) {
	return s.findOne(ctx, s.db.WithContext(ctx).Where("generation_id = ? AND week = ?", uint(generationID), week))
}

func (s *GormCycleStore) FindCurrent(ctx context.Context, generationID domain.GenerationID, at time.Time) (*domain.Cycle, error) {
	return s.findOne(ctx, s.db.WithContext(ctx).
		Where("generation_id = ? AND start_date <= ? AND end_date >= ?", uint(generationID), at, at).
		Order("start_date DESC"))
}

func (s *GormCycleStore) findOne(ctx context.Context, query *gorm.DB) (*domain.Cycle, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var cycle Cycle
	if err := query.Limit(1).Find(&cycle).Error; err != nil {
		return nil, err
	}
	if cycle.ID == 0 {
		return nil, nil
	}
	return cycle.ToDomain(), nil
}

func (s *GormCycleStore) FindByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Cycle, error) {
	return s.findMany(ctx, s.db.WithContext(ctx).Where("generation_id = ?", uint(generationID)).Order("week ASC"))
}

func (s *GormCycleStore) FindUpcomingDeadlines(ctx context.Context, hoursBefore int) ([]domain.Cycle, error) {
	now := s.now()
	until := now.Add(time.Duration(hoursBefore) * time.Hour)
	return s.findMany(ctx, s.db.WithContext(ctx).
		Where("end_date > ? AND end_date <= ?", now, until).
		Order("end_date ASC"))
}

func (s *GormCycleStore) findMany(ctx context.Context, query *gorm.DB) ([]domain.Cycle, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var rows []Cycle
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	cycles := make([]domain.Cycle, 0, len(rows))
	for _, row := range rows {
		cycles = append(cycles, *row.ToDomain())
	}
	return cycles, nil
}

func (s *GormCycleStore) Save(ctx context.Context, cycle domain.Cycle) (*domain.Cycle, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	row := ToGormCycle(&cycle)
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, translate(err)
	}
	return row.ToDomain(), nil
}
