package repository

import (
	"context"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"gorm.io/gorm"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	CreateAll(ctx context.Context, guests []models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	// FindByEvent returns every guest of the event in registration order.
	FindByEvent(ctx context.Context, eventID uint) ([]models.Guest, error)
	// FindBadged returns badge-holding guests ordered by badge number.
	FindBadged(ctx context.Context, eventID uint) ([]models.Guest, error)
	FindByBadge(ctx context.Context, eventID uint, badge int) (*models.Guest, error)
	UpdateBadgeNumber(ctx context.Context, guestID uint, badge int) error
	UpdatePartner(ctx context.Context, guestID uint, partnerID *uint) error
	ClearPartners(ctx context.Context, eventID uint) error
	UpdateProfile(ctx context.Context, guestID uint, fields map[string]any) error
	MarkFound(ctx context.Context, guestID uint) error
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) CreateAll(ctx context.Context, guests []models.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&guests).Error
}

func (r *guestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindByEvent(ctx context.Context, eventID uint) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) FindBadged(ctx context.Context, eventID uint) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND badge_number IS NOT NULL", eventID).
		Order("badge_number ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) FindByBadge(ctx context.Context, eventID uint, badge int) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND badge_number = ?", eventID, badge).
		First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) UpdateBadgeNumber(ctx context.Context, guestID uint, badge int) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Update("badge_number", badge).Error
}

func (r *guestRepository) UpdatePartner(ctx context.Context, guestID uint, partnerID *uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Update("partner_id", partnerID).Error
}

func (r *guestRepository) ClearPartners(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("event_id = ?", eventID).
		Update("partner_id", nil).Error
}

func (r *guestRepository) UpdateProfile(ctx context.Context, guestID uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Updates(fields).Error
}

func (r *guestRepository) MarkFound(ctx context.Context, guestID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Update("found", true).Error
}
