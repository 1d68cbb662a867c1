// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/persistence/model"
)

// tenantRepository implements the adapter.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository instance.
func NewTenantRepository(db *gorm.DB) adapter.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// Create creates a new tenant in the database.
func (r *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantModel := model.TenantFromEntity(tenant)
	result := r.db.WithContext(ctx).Create(tenantModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tenant by their ID.
func (r *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantModel model.TenantModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tenantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTenantNotFound
		}
		return nil, result.Error
	}
	return tenantModel.ToEntity(), nil
}

// FindByUserID retrieves all tenants registered by a user.
func (r *tenantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tenant, error) {
	var tenantModels []model.TenantModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("full_name ASC").
		Find(&tenantModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tenants := make([]*entity.Tenant, len(tenantModels))
	for i, tm := range tenantModels {
		tenants[i] = tm.ToEntity()
	}
	return tenants, nil
}

// FindByEmail retrieves a tenant by email within a user's account.
func (r *tenantRepository) FindByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Tenant, error) {
	var tenantModel model.TenantModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(email) = ?", userID, strings.ToLower(email)).
		First(&tenantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTenantNotFound
		}
		return nil, result.Error
	}
	return tenantModel.ToEntity(), nil
}

// Update updates an existing tenant in the database.
func (r *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	tenantModel := model.TenantFromEntity(tenant)
	result := r.db.WithContext(ctx).Save(tenantModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a tenant.
func (r *tenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TenantModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTenantNotFound
	}
	return nil
}
