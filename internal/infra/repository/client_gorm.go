package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/agendalivre/agenda-crm/internal/domain/client"
	"github.com/agendalivre/agenda-crm/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ClientGormRepository) FindAll(
	ctx context.Context,
	tenantID uint,
) ([]models.Client, error) {

	clients := []models.Client{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", tenantID).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, tenantID).
		First(&client).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

// Create usa o INSERT..RETURNING do driver: id e timestamps voltam
// preenchidos, sem segundo round trip.
func (r *ClientGormRepository) Create(
	ctx context.Context,
	tenantID uint,
	in domain.Input,
) (*models.Client, error) {

	client := models.Client{
		TenantID:  tenantID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	tenantID uint,
	id uint,
	in domain.Input,
) (int64, error) {

	// map em vez de struct: ponteiros nil precisam virar NULL,
	// não ser pulados pelo gorm.
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ? AND user_id = ?", id, tenantID).
		Updates(map[string]any{
			"name":       in.Name,
			"phone":      in.Phone,
			"email":      in.Email,
			"notes":      in.Notes,
			"birth_date": in.BirthDate,
			"gender":     in.Gender,
		})

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	tenantID uint,
	id uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, tenantID).
		Delete(&models.Client{})

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
