// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// RoomModel represents the rooms table in the database.
type RoomModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name        string           `gorm:"type:varchar(100);not null"`
	MonthlyRent decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	SizeSqm     *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Furnished   bool             `gorm:"default:false"`
	Available   bool             `gorm:"default:true;index"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
	DeletedAt   gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName returns the table name for the RoomModel.
func (RoomModel) TableName() string {
	return "rooms"
}

// ToEntity converts a RoomModel to a domain Room entity.
func (m *RoomModel) ToEntity() *entity.Room {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Room{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		Name:        m.Name,
		MonthlyRent: m.MonthlyRent,
		SizeSqm:     m.SizeSqm,
		Furnished:   m.Furnished,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// RoomFromEntity creates a RoomModel from a domain Room entity.
func RoomFromEntity(room *entity.Room) *RoomModel {
	var deletedAt gorm.DeletedAt
	if room.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *room.DeletedAt, Valid: true}
	}

	return &RoomModel{
		ID:          room.ID,
		PropertyID:  room.PropertyID,
		Name:        room.Name,
		MonthlyRent: room.MonthlyRent,
		SizeSqm:     room.SizeSqm,
		Furnished:   room.Furnished,
		Available:   room.Available,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
