package repository

import (
	"context"

	"ClubRoster/internal/model"

	"gorm.io/gorm"
)

// PlayerFilter list filters
type PlayerFilter struct {
	Status string // optional player status
}

// PlayerRepository roster persistence
type PlayerRepository interface {
	Create(ctx context.Context, player *model.Player) error
	GetByID(ctx context.Context, id uint64) (*model.Player, error)
	List(ctx context.Context, filter PlayerFilter) ([]model.Player, error)
	// JerseyNumberTaken reports whether another player (id != excludeID) wears number.
	JerseyNumberTaken(ctx context.Context, number int, excludeID uint64) (bool, error)
	Updates(ctx context.Context, id uint64, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uint64, status model.PlayerStatus) error
	Count(ctx context.Context) (int64, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id uint64) (*model.Player, error) {
	var p model.Player
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) List(ctx context.Context, filter PlayerFilter) ([]model.Player, error) {
	db := r.db.WithContext(ctx).Model(&model.Player{})
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	var list []model.Player
	if err := db.Order("jersey_number ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *playerRepository) JerseyNumberTaken(ctx context.Context, number int, excludeID uint64) (bool, error) {
	db := r.db.WithContext(ctx).Model(&model.Player{}).Where("jersey_number = ?", number)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var n int64
	if err := db.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *playerRepository) Updates(ctx context.Context, id uint64, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Player{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *playerRepository) UpdateStatus(ctx context.Context, id uint64, status model.PlayerStatus) error {
	return r.Updates(ctx, id, map[string]interface{}{"status": status})
}

func (r *playerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Player{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
