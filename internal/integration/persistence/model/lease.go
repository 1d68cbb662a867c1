// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// LeaseModel represents the leases table in the database.
type LeaseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RoomID        *uuid.UUID      `gorm:"type:uuid;index"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       time.Time       `gorm:"type:date;not null;index"`
	MonthlyRent   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DepositAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RentDueDay    int             `gorm:"not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active';index"`
	TerminatedAt  *time.Time      `gorm:"type:timestamptz"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
	Room     *RoomModel     `gorm:"foreignKey:RoomID;references:ID"`
	Tenant   *TenantModel   `gorm:"foreignKey:TenantID;references:ID"`
}

// TableName returns the table name for the LeaseModel.
func (LeaseModel) TableName() string {
	return "leases"
}

// ToEntity converts a LeaseModel to a domain Lease entity.
func (m *LeaseModel) ToEntity() *entity.Lease {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Lease{
		ID:            m.ID,
		UserID:        m.UserID,
		PropertyID:    m.PropertyID,
		RoomID:        m.RoomID,
		TenantID:      m.TenantID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		MonthlyRent:   m.MonthlyRent,
		DepositAmount: m.DepositAmount,
		RentDueDay:    m.RentDueDay,
		Status:        entity.LeaseStatus(m.Status),
		TerminatedAt:  m.TerminatedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// LeaseFromEntity creates a LeaseModel from a domain Lease entity.
func LeaseFromEntity(lease *entity.Lease) *LeaseModel {
	var deletedAt gorm.DeletedAt
	if lease.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *lease.DeletedAt, Valid: true}
	}

	return &LeaseModel{
		ID:            lease.ID,
		UserID:        lease.UserID,
		PropertyID:    lease.PropertyID,
		RoomID:        lease.RoomID,
		TenantID:      lease.TenantID,
		StartDate:     lease.StartDate,
		EndDate:       lease.EndDate,
		MonthlyRent:   lease.MonthlyRent,
		DepositAmount: lease.DepositAmount,
		RentDueDay:    lease.RentDueDay,
		Status:        string(lease.Status),
		TerminatedAt:  lease.TerminatedAt,
		CreatedAt:     lease.CreatedAt,
		UpdatedAt:     lease.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
