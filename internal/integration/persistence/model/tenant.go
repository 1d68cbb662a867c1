// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// TenantModel represents the tenants table in the database.
type TenantModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	PropertyID  *uuid.UUID     `gorm:"type:uuid;index"`
	FullName    string         `gorm:"type:varchar(255);not null"`
	Email       string         `gorm:"type:varchar(255);index"`
	Phone       string         `gorm:"type:varchar(50)"`
	MoveInDate  *time.Time     `gorm:"type:date"`
	MoveOutDate *time.Time     `gorm:"type:date"`
	Active      bool           `gorm:"default:true;index"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName returns the table name for the TenantModel.
func (TenantModel) TableName() string {
	return "tenants"
}

// ToEntity converts a TenantModel to a domain Tenant entity.
func (m *TenantModel) ToEntity() *entity.Tenant {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Tenant{
		ID:          m.ID,
		UserID:      m.UserID,
		PropertyID:  m.PropertyID,
		FullName:    m.FullName,
		Email:       m.Email,
		Phone:       m.Phone,
		MoveInDate:  m.MoveInDate,
		MoveOutDate: m.MoveOutDate,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// TenantFromEntity creates a TenantModel from a domain Tenant entity.
func TenantFromEntity(tenant *entity.Tenant) *TenantModel {
	var deletedAt gorm.DeletedAt
	if tenant.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *tenant.DeletedAt, Valid: true}
	}

	return &TenantModel{
		ID:          tenant.ID,
		UserID:      tenant.UserID,
		PropertyID:  tenant.PropertyID,
		FullName:    tenant.FullName,
		Email:       tenant.Email,
		Phone:       tenant.Phone,
		MoveInDate:  tenant.MoveInDate,
		MoveOutDate: tenant.MoveOutDate,
		Active:      tenant.Active,
		CreatedAt:   tenant.CreatedAt,
		UpdatedAt:   tenant.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
