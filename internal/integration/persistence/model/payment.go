// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TenantID    *uuid.UUID      `gorm:"type:uuid;index"`
	LeaseID     *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Type        string          `gorm:"type:varchar(20);not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;default:'completed';index"`
	Method      string          `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
	Tenant   *TenantModel   `gorm:"foreignKey:TenantID;references:ID"`
	Lease    *LeaseModel    `gorm:"foreignKey:LeaseID;references:ID"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Payment{
		ID:          m.ID,
		UserID:      m.UserID,
		PropertyID:  m.PropertyID,
		TenantID:    m.TenantID,
		LeaseID:     m.LeaseID,
		Amount:      m.Amount,
		Date:        m.Date,
		Type:        entity.PaymentType(m.Type),
		Status:      entity.PaymentStatus(m.Status),
		Method:      entity.PaymentMethod(m.Method),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	var deletedAt gorm.DeletedAt
	if payment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *payment.DeletedAt, Valid: true}
	}

	return &PaymentModel{
		ID:          payment.ID,
		UserID:      payment.UserID,
		PropertyID:  payment.PropertyID,
		TenantID:    payment.TenantID,
		LeaseID:     payment.LeaseID,
		Amount:      payment.Amount,
		Date:        payment.Date,
		Type:        string(payment.Type),
		Status:      string(payment.Status),
		Method:      string(payment.Method),
		Description: payment.Description,
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
