// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/persistence/model"
)

// leaseRepository implements the adapter.LeaseRepository interface.
type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository instance.
func NewLeaseRepository(db *gorm.DB) adapter.LeaseRepository {
	return &leaseRepository{
		db: db,
	}
}

// Create creates a new lease in the database.
func (r *leaseRepository) Create(ctx context.Context, lease *entity.Lease) error {
	leaseModel := model.LeaseFromEntity(lease)
	result := r.db.WithContext(ctx).Create(leaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a lease by its ID.
func (r *leaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	var leaseModel model.LeaseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&leaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLeaseNotFound
		}
		return nil, result.Error
	}
	return leaseModel.ToEntity(), nil
}

// FindByUserID retrieves leases for a user matching the given filters.
func (r *leaseRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter adapter.LeaseFilter) ([]*entity.Lease, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var leaseModels []model.LeaseModel
	result := query.Order("start_date DESC").Find(&leaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	leases := make([]*entity.Lease, len(leaseModels))
	for i, lm := range leaseModels {
		leases[i] = lm.ToEntity()
	}
	return leases, nil
}

// FindActiveByRoomID retrieves the active lease on a room, if any.
func (r *leaseRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Lease, error) {
	var leaseModel model.LeaseModel
	result := r.db.WithContext(ctx).
		Where("room_id = ? AND status = ?", roomID, string(entity.LeaseStatusActive)).
		First(&leaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return leaseModel.ToEntity(), nil
}

// FindExpiringBetween retrieves active leases whose end date falls in the window.
func (r *leaseRepository) FindExpiringBetween(ctx context.Context, start, end time.Time) ([]*entity.Lease, error) {
	var leaseModels []model.LeaseModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.LeaseStatusActive)).
		Where("end_date >= ? AND end_date <= ?", start, end).
		Order("end_date ASC").
		Find(&leaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	leases := make([]*entity.Lease, len(leaseModels))
	for i, lm := range leaseModels {
		leases[i] = lm.ToEntity()
	}
	return leases, nil
}

// FindActiveWithRentDueDay retrieves active leases whose rent due day matches.
func (r *leaseRepository) FindActiveWithRentDueDay(ctx context.Context, day int) ([]*entity.Lease, error) {
	var leaseModels []model.LeaseModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND rent_due_day = ?", string(entity.LeaseStatusActive), day).
		Find(&leaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	leases := make([]*entity.Lease, len(leaseModels))
	for i, lm := range leaseModels {
		leases[i] = lm.ToEntity()
	}
	return leases, nil
}

// Update updates an existing lease in the database.
func (r *leaseRepository) Update(ctx context.Context, lease *entity.Lease) error {
	leaseModel := model.LeaseFromEntity(lease)
	result := r.db.WithContext(ctx).Save(leaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
