package repository

import (
	"context"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomParticipantRepository interface {
	// UpsertAll writes membership rows keyed on (room_id, guest_id);
	// rows that already exist are left untouched.
	UpsertAll(ctx context.Context, participants []models.RoomParticipant) error
	FindByEvent(ctx context.Context, eventID uint) ([]models.RoomParticipant, error)
	DeleteByEvent(ctx context.Context, eventID uint) error
}

type roomParticipantRepository struct {
	db *gorm.DB
}

func NewRoomParticipantRepository(db *gorm.DB) RoomParticipantRepository {
	return &roomParticipantRepository{db: db}
}

func (r *roomParticipantRepository) UpsertAll(ctx context.Context, participants []models.RoomParticipant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "guest_id"}},
			DoNothing: true,
		}).
		Create(&participants).Error
}

func (r *roomParticipantRepository) FindByEvent(ctx context.Context, eventID uint) ([]models.RoomParticipant, error) {
	var participants []models.RoomParticipant
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *roomParticipantRepository) DeleteByEvent(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&models.RoomParticipant{}).Error
}
