package repository

import (
	"context"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"gorm.io/gorm"
)

type RoomRepository interface {
	// CreateBatch inserts all rooms in one statement; generated IDs are
	// written back into the slice elements.
	CreateBatch(ctx context.Context, rooms []models.Room) ([]models.Room, error)
	FindByEvent(ctx context.Context, eventID uint) ([]models.Room, error)
	DeleteByEvent(ctx context.Context, eventID uint) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) CreateBatch(ctx context.Context, rooms []models.Room) ([]models.Room, error) {
	if len(rooms) == 0 {
		return rooms, nil
	}
	if err := r.db.WithContext(ctx).Create(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByEvent(ctx context.Context, eventID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) DeleteByEvent(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&models.Room{}).Error
}
