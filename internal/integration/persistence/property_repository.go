// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/persistence/model"
)

// propertyRepository implements the adapter.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create creates a new property in the database.
func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	result := r.db.WithContext(ctx).Create(propertyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a property by its ID.
func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&propertyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return propertyModel.ToEntity(), nil
}

// FindByUserID retrieves all properties owned by a user.
func (r *propertyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i, pm := range propertyModels {
		properties[i] = pm.ToEntity()
	}
	return properties, nil
}

// Update updates an existing property in the database.
func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	result := r.db.WithContext(ctx).Save(propertyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a property and its rooms.
func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&model.RoomModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.PropertyModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPropertyNotFound
		}
		return nil
	})
}
