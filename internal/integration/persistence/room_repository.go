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

// roomRepository implements the adapter.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository instance.
func NewRoomRepository(db *gorm.DB) adapter.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// Create creates a new room in the database.
func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	roomModel := model.RoomFromEntity(room)
	result := r.db.WithContext(ctx).Create(roomModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a room by its ID.
func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomModel model.RoomModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&roomModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRoomNotFound
		}
		return nil, result.Error
	}
	return roomModel.ToEntity(), nil
}

// FindByPropertyID retrieves all rooms of a property.
func (r *roomRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error) {
	var roomModels []model.RoomModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("name ASC").
		Find(&roomModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rooms := make([]*entity.Room, len(roomModels))
	for i, rm := range roomModels {
		rooms[i] = rm.ToEntity()
	}
	return rooms, nil
}

// Update updates an existing room in the database.
func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	roomModel := model.RoomFromEntity(room)
	result := r.db.WithContext(ctx).Save(roomModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a room.
func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RoomModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRoomNotFound
	}
	return nil
}
