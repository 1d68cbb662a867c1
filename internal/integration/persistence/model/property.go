// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Address       string           `gorm:"type:varchar(500)"`
	City          string           `gorm:"type:varchar(100)"`
	State         string           `gorm:"type:varchar(100)"`
	PostalCode    string           `gorm:"type:varchar(20)"`
	PurchasePrice *decimal.Decimal `gorm:"type:decimal(15,2)"`
	LandValue     *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PurchaseDate  *time.Time       `gorm:"type:date"`
	Notes         string           `gorm:"type:text"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
	DeletedAt     gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User  *UserModel  `gorm:"foreignKey:UserID;references:ID"`
	Rooms []RoomModel `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Property{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Address:       m.Address,
		City:          m.City,
		State:         m.State,
		PostalCode:    m.PostalCode,
		PurchasePrice: m.PurchasePrice,
		LandValue:     m.LandValue,
		PurchaseDate:  m.PurchaseDate,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// PropertyFromEntity creates a PropertyModel from a domain Property entity.
func PropertyFromEntity(property *entity.Property) *PropertyModel {
	var deletedAt gorm.DeletedAt
	if property.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *property.DeletedAt, Valid: true}
	}

	return &PropertyModel{
		ID:            property.ID,
		UserID:        property.UserID,
		Name:          property.Name,
		Address:       property.Address,
		City:          property.City,
		State:         property.State,
		PostalCode:    property.PostalCode,
		PurchasePrice: property.PurchasePrice,
		LandValue:     property.LandValue,
		PurchaseDate:  property.PurchaseDate,
		Notes:         property.Notes,
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
