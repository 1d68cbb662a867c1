// Package reminder contains the scheduled notification sweep.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
)

// DefaultLeadDays is how many days before the due date rent reminders go out.
const DefaultLeadDays = 3

// DefaultExpiryNoticeDays is how far ahead lease expiry notices look.
const DefaultExpiryNoticeDays = 30

// SendRemindersInput represents the input for a reminder sweep.
type SendRemindersInput struct {
	Now        time.Time
	LeadDays   int
	ExpiryDays int
}

// SendRemindersOutput reports how many reminders were queued.
type SendRemindersOutput struct {
	RentRemindersQueued int
	ExpiryNoticesQueued int
}

// SendRemindersUseCase queues rent due reminders for tenants and lease
// expiry notices for landlords. The sweep is idempotent: each reminder
// carries a dedupe key so rerunning it queues nothing twice.
type SendRemindersUseCase struct {
	leaseRepo    adapter.LeaseRepository
	tenantRepo   adapter.TenantRepository
	propertyRepo adapter.PropertyRepository
	roomRepo     adapter.RoomRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewSendRemindersUseCase creates a new SendRemindersUseCase instance.
func NewSendRemindersUseCase(
	leaseRepo adapter.LeaseRepository,
	tenantRepo adapter.TenantRepository,
	propertyRepo adapter.PropertyRepository,
	roomRepo adapter.RoomRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		leaseRepo:    leaseRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute runs one reminder sweep.
func (uc *SendRemindersUseCase) Execute(ctx context.Context, input SendRemindersInput) (*SendRemindersOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	leadDays := input.LeadDays
	if leadDays <= 0 {
		leadDays = DefaultLeadDays
	}
	expiryDays := input.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = DefaultExpiryNoticeDays
	}

	output := &SendRemindersOutput{}

	rentCount, err := uc.sweepRentReminders(ctx, now, leadDays)
	if err != nil {
		return nil, err
	}
	output.RentRemindersQueued = rentCount

	expiryCount, err := uc.sweepExpiryNotices(ctx, now, expiryDays)
	if err != nil {
		return nil, err
	}
	output.ExpiryNoticesQueued = expiryCount

	return output, nil
}

// sweepRentReminders queues a reminder for each active lease whose rent
// falls due in exactly leadDays from now.
func (uc *SendRemindersUseCase) sweepRentReminders(ctx context.Context, now time.Time, leadDays int) (int, error) {
	target := now.AddDate(0, 0, leadDays)
	leases, err := uc.leaseRepo.FindActiveWithRentDueDay(ctx, target.Day())
	if err != nil {
		return 0, fmt.Errorf("failed to find leases with due rent: %w", err)
	}

	queued := 0
	for _, lease := range leases {
		// Skip leases that end before the due date.
		dueDate := time.Date(target.Year(), target.Month(), lease.RentDueDay, 0, 0, 0, 0, time.UTC)
		if dueDate.After(lease.EndDate) || dueDate.Before(lease.StartDate) {
			continue
		}
		if !uc.remindersEnabled(ctx, lease.UserID) {
			continue
		}

		tenant, err := uc.tenantRepo.FindByID(ctx, lease.TenantID)
		if err != nil || tenant == nil || tenant.Email == "" {
			continue
		}
		property, err := uc.propertyRepo.FindByID(ctx, lease.PropertyID)
		if err != nil || property == nil {
			continue
		}

		err = uc.emailService.QueueRentReminderEmail(ctx, adapter.QueueRentReminderInput{
			TenantEmail:  tenant.Email,
			TenantName:   tenant.FullName,
			PropertyName: property.Name,
			RoomName:     uc.roomName(ctx, lease.RoomID),
			Amount:       lease.MonthlyRent.StringFixed(2),
			DueDate:      dueDate.Format("2006-01-02"),
			DedupeKey:    fmt.Sprintf("rent-reminder:%s:%s", lease.ID, dueDate.Format("2006-01")),
		})
		if err != nil {
			slog.Warn("failed to queue rent reminder",
				"lease_id", lease.ID,
				"error", err,
			)
			continue
		}
		queued++
	}
	return queued, nil
}

// sweepExpiryNotices queues a notice to the landlord for each active lease
// ending within expiryDays.
func (uc *SendRemindersUseCase) sweepExpiryNotices(ctx context.Context, now time.Time, expiryDays int) (int, error) {
	leases, err := uc.leaseRepo.FindExpiringBetween(ctx, now, now.AddDate(0, 0, expiryDays))
	if err != nil {
		return 0, fmt.Errorf("failed to find expiring leases: %w", err)
	}

	queued := 0
	for _, lease := range leases {
		user, err := uc.userRepo.FindByID(ctx, lease.UserID)
		if err != nil || user == nil || !user.EmailNotifications {
			continue
		}
		tenant, err := uc.tenantRepo.FindByID(ctx, lease.TenantID)
		if err != nil || tenant == nil {
			continue
		}
		property, err := uc.propertyRepo.FindByID(ctx, lease.PropertyID)
		if err != nil || property == nil {
			continue
		}

		err = uc.emailService.QueueLeaseExpiryEmail(ctx, adapter.QueueLeaseExpiryInput{
			UserEmail:    user.Email,
			UserName:     user.Name,
			TenantName:   tenant.FullName,
			PropertyName: property.Name,
			RoomName:     uc.roomName(ctx, lease.RoomID),
			EndDate:      lease.EndDate.Format("2006-01-02"),
			DedupeKey:    fmt.Sprintf("lease-expiry:%s", lease.ID),
		})
		if err != nil {
			slog.Warn("failed to queue lease expiry notice",
				"lease_id", lease.ID,
				"error", err,
			)
			continue
		}
		queued++
	}
	return queued, nil
}

func (uc *SendRemindersUseCase) remindersEnabled(ctx context.Context, userID uuid.UUID) bool {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return false
	}
	return user.EmailNotifications && user.RentReminders
}

func (uc *SendRemindersUseCase) roomName(ctx context.Context, roomID *uuid.UUID) string {
	if roomID == nil {
		return ""
	}
	room, err := uc.roomRepo.FindByID(ctx, *roomID)
	if err != nil || room == nil {
		return ""
	}
	return room.Name
}
