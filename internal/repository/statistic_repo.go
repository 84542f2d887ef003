package repository

import (
	"context"
	"fmt"

	"ClubRoster/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatisticFilter list filters; zero means unset
type StatisticFilter struct {
	PlayerID uint64
	MatchID  uint64
}

// StatisticRepository per-match player lines
type StatisticRepository interface {
	// Create inserts stat; when suspendPlayer is set the referenced player is
	// marked SUSPENDED in the same transaction.
	Create(ctx context.Context, stat *model.Statistic, suspendPlayer bool) error
	Exists(ctx context.Context, playerID, matchID uint64) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.Statistic, error)
	List(ctx context.Context, filter StatisticFilter) ([]model.Statistic, error)
	// ListByPlayer returns a player's lines with their match, newest match first.
	ListByPlayer(ctx context.Context, playerID uint64) ([]model.Statistic, error)
	// ListByMatch returns a match's lines with their player, by jersey number.
	ListByMatch(ctx context.Context, matchID uint64) ([]model.Statistic, error)
	Delete(ctx context.Context, id uint64) error
}

type statisticRepository struct {
	db *gorm.DB
}

// NewStatisticRepository creates a StatisticRepository
func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &statisticRepository{db: db}
}

func (r *statisticRepository) Create(ctx context.Context, stat *model.Statistic, suspendPlayer bool) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if suspendPlayer {
		res := tx.Model(&model.Player{}).Where("id = ?", stat.PlayerID).
			Update("status", model.StatusSuspended)
		if res.Error != nil {
			tx.Rollback()
			return fmt.Errorf("suspend player %d: %w", stat.PlayerID, res.Error)
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			return gorm.ErrRecordNotFound
		}
	}

	if err := tx.Omit("Player", "Match").Create(stat).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *statisticRepository) Exists(ctx context.Context, playerID, matchID uint64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Statistic{}).
		Where("player_id = ? AND match_id = ?", playerID, matchID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *statisticRepository) GetByID(ctx context.Context, id uint64) (*model.Statistic, error) {
	var s model.Statistic
	if err := r.db.WithContext(ctx).Preload("Player").Preload("Match").
		Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statisticRepository) List(ctx context.Context, filter StatisticFilter) ([]model.Statistic, error) {
	db := r.db.WithContext(ctx).Model(&model.Statistic{})
	if filter.PlayerID != 0 {
		db = db.Where("player_id = ?", filter.PlayerID)
	}
	if filter.MatchID != 0 {
		db = db.Where("match_id = ?", filter.MatchID)
	}
	var list []model.Statistic
	if err := db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *statisticRepository) ListByPlayer(ctx context.Context, playerID uint64) ([]model.Statistic, error) {
	var list []model.Statistic
	if err := r.db.WithContext(ctx).
		Joins("Match").
		Where("statistics.player_id = ?", playerID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "Match", Name: "match_date"}, Desc: true}).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *statisticRepository) ListByMatch(ctx context.Context, matchID uint64) ([]model.Statistic, error) {
	var list []model.Statistic
	if err := r.db.WithContext(ctx).
		Joins("Player").
		Where("statistics.match_id = ?", matchID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "Player", Name: "jersey_number"}}).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *statisticRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Statistic{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
