package repository

import (
	"context"
	"fmt"

	"ClubRoster/internal/model"

	"gorm.io/gorm"
)

// MatchFilter list filters
type MatchFilter struct {
	Result string // optional WIN/DRAW/LOSS
}

// MatchRepository fixture persistence
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	GetByID(ctx context.Context, id uint64) (*model.Match, error)
	// List returns matches newest first.
	List(ctx context.Context, filter MatchFilter) ([]model.Match, error)
	// Delete removes the match and its statistics; it returns the ids of the
	// players whose lines were removed.
	Delete(ctx context.Context, id uint64) ([]uint64, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) GetByID(ctx context.Context, id uint64) (*model.Match, error) {
	var m model.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) List(ctx context.Context, filter MatchFilter) ([]model.Match, error) {
	db := r.db.WithContext(ctx).Model(&model.Match{})
	if filter.Result != "" {
		db = db.Where("result = ?", filter.Result)
	}
	var list []model.Match
	if err := db.Order("match_date DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *matchRepository) Delete(ctx context.Context, id uint64) ([]uint64, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	var playerIDs []uint64
	if err := tx.Model(&model.Statistic{}).Where("match_id = ?", id).Pluck("player_id", &playerIDs).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("load match statistics: %w", err)
	}
	if err := tx.Where("match_id = ?", id).Delete(&model.Statistic{}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("delete match statistics: %w", err)
	}
	res := tx.Where("id = ?", id).Delete(&model.Match{})
	if res.Error != nil {
		tx.Rollback()
		return nil, fmt.Errorf("delete match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, gorm.ErrRecordNotFound
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return playerIDs, nil
}
