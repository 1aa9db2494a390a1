package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
)

// GormGenerationStore is a GORM-based implementation of GenerationStore
type GormGenerationStore struct {
	db *gorm.DB
}

// NewGormGenerationStore initializes a new GormGenerationStore
func NewGormGenerationStore(db *gorm.DB) GenerationStore {
	return &GormGenerationStore{db: db}
}

func (s *GormGenerationStore) FindByID(ctx context.Context, id domain.GenerationID) (*domain.Generation, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var generation Generation
	if err := s.db.WithContext(ctx).Where("id = ?", uint(id)).Limit(1).Find(&generation).Error; err != nil {
		return nil, err
	}
	if generation.ID == 0 {
		return nil, nil
	}
	return generation.ToDomain(), nil
}

func (s *GormGenerationStore) FindActive(ctx context.Context) (*domain.Generation, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	var generation Generation
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("started_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&generation).Error
	if err != nil {
		return nil, err
	}
	if generation.ID == 0 {
		return nil, nil
	}
	return generation.ToDomain(), nil
}

func (s *GormGenerationStore) FindAll(ctx context.Context) ([]domain.Generation, error) {
	var rows []Generation
	if err := s.db.WithContext(ctx).Order("started_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	generations := make([]domain.Generation, 0, len(rows))
	for _, row := range rows {
		generations = append(generations, *row.ToDomain())
	}
	return generations, nil
}

// Save creates the generation when it has no id and updates it otherwise.
func (s *GormGenerationStore) Save(ctx context.Context, generation domain.Generation) (*domain.Generation, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	row := ToGormGeneration(&generation)
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, translate(err)
	}
	return row.ToDomain(), nil
}

func (s *GormGenerationStore) Activate(ctx context.Context, id domain.GenerationID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Generation{}).Where("id = ?", uint(id)).Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errcodes.ErrNoRecordFound
		}
		return tx.Model(&Generation{}).
			Where("id <> ? AND is_active = ?", uint(id), true).
			Update("is_active", false).Error
	})
}
