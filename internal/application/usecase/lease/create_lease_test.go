package lease

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

type stubLeaseRepo struct {
	created []*entity.Lease
	updated []*entity.Lease
	leases  map[uuid.UUID]*entity.Lease
}

func (s *stubLeaseRepo) Create(ctx context.Context, lease *entity.Lease) error {
	s.created = append(s.created, lease)
	return nil
}

func (s *stubLeaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	return s.leases[id], nil
}

func (s *stubLeaseRepo) FindByUserID(ctx context.Context, userID uuid.UUID, filter adapter.LeaseFilter) ([]*entity.Lease, error) {
	return nil, nil
}

func (s *stubLeaseRepo) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Lease, error) {
	return nil, nil
}

func (s *stubLeaseRepo) FindExpiringBetween(ctx context.Context, start, end time.Time) ([]*entity.Lease, error) {
	return nil, nil
}

func (s *stubLeaseRepo) FindActiveWithRentDueDay(ctx context.Context, day int) ([]*entity.Lease, error) {
	return nil, nil
}

func (s *stubLeaseRepo) Update(ctx context.Context, lease *entity.Lease) error {
	s.updated = append(s.updated, lease)
	return nil
}

type stubPropertyRepo struct {
	properties map[uuid.UUID]*entity.Property
}

func (s *stubPropertyRepo) Create(ctx context.Context, property *entity.Property) error { return nil }

func (s *stubPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return s.properties[id], nil
}

func (s *stubPropertyRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error) {
	return nil, nil
}

func (s *stubPropertyRepo) Update(ctx context.Context, property *entity.Property) error { return nil }

func (s *stubPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubRoomRepo struct {
	rooms   map[uuid.UUID]*entity.Room
	updated []*entity.Room
}

func (s *stubRoomRepo) Create(ctx context.Context, room *entity.Room) error { return nil }

func (s *stubRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return s.rooms[id], nil
}

func (s *stubRoomRepo) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	s.updated = append(s.updated, room)
	return nil
}

func (s *stubRoomRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubTenantRepo struct {
	tenants map[uuid.UUID]*entity.Tenant
}

func (s *stubTenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error { return nil }

func (s *stubTenantRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	return s.tenants[id], nil
}

func (s *stubTenantRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tenant, error) {
	return nil, nil
}

func (s *stubTenantRepo) FindByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Tenant, error) {
	return nil, nil
}

func (s *stubTenantRepo) Update(ctx context.Context, tenant *entity.Tenant) error { return nil }

func (s *stubTenantRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type leaseFixture struct {
	userID   uuid.UUID
	property *entity.Property
	room     *entity.Room
	tenant   *entity.Tenant

	leaseRepo    *stubLeaseRepo
	propertyRepo *stubPropertyRepo
	roomRepo     *stubRoomRepo
	tenantRepo   *stubTenantRepo
	useCase      *CreateLeaseUseCase
}

func newLeaseFixture() *leaseFixture {
	userID := uuid.New()
	property := entity.NewProperty(userID, "Sunset House", "1 Test St", "Lisbon", "", "1200-123", "")
	room := entity.NewRoom(property.ID, "Room A", decimal.NewFromInt(650), nil, true)
	tenant := entity.NewTenant(userID, &property.ID, "Joao Silva", "joao@example.com", "")

	f := &leaseFixture{
		userID:   userID,
		property: property,
		room:     room,
		tenant:   tenant,
		leaseRepo: &stubLeaseRepo{
			leases: map[uuid.UUID]*entity.Lease{},
		},
		propertyRepo: &stubPropertyRepo{
			properties: map[uuid.UUID]*entity.Property{property.ID: property},
		},
		roomRepo: &stubRoomRepo{
			rooms: map[uuid.UUID]*entity.Room{room.ID: room},
		},
		tenantRepo: &stubTenantRepo{
			tenants: map[uuid.UUID]*entity.Tenant{tenant.ID: tenant},
		},
	}
	f.useCase = NewCreateLeaseUseCase(f.leaseRepo, f.propertyRepo, f.roomRepo, f.tenantRepo)
	return f
}

func (f *leaseFixture) input() CreateLeaseInput {
	return CreateLeaseInput{
		UserID:        f.userID,
		PropertyID:    f.property.ID,
		RoomID:        &f.room.ID,
		TenantID:      f.tenant.ID,
		StartDate:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:   decimal.NewFromInt(650),
		DepositAmount: decimal.NewFromInt(1300),
		RentDueDay:    1,
	}
}

func TestCreateLease_Success(t *testing.T) {
	f := newLeaseFixture()

	output, err := f.useCase.Execute(context.Background(), f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Lease.Status != entity.LeaseStatusActive {
		t.Errorf("expected status active, got %s", output.Lease.Status)
	}
	if len(f.leaseRepo.created) != 1 {
		t.Fatalf("expected 1 lease created, got %d", len(f.leaseRepo.created))
	}
}

func TestCreateLease_MarksRoomOccupied(t *testing.T) {
	f := newLeaseFixture()

	_, err := f.useCase.Execute(context.Background(), f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.roomRepo.updated) != 1 {
		t.Fatalf("expected room update, got %d", len(f.roomRepo.updated))
	}
	if f.roomRepo.updated[0].Available {
		t.Error("expected room to be marked unavailable")
	}
}

func TestCreateLease_WithoutRoom(t *testing.T) {
	f := newLeaseFixture()
	input := f.input()
	input.RoomID = nil

	_, err := f.useCase.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.roomRepo.updated) != 0 {
		t.Errorf("expected no room updates, got %d", len(f.roomRepo.updated))
	}
}

func TestCreateLease_EndBeforeStart(t *testing.T) {
	f := newLeaseFixture()
	input := f.input()
	input.StartDate, input.EndDate = input.EndDate, input.StartDate

	_, err := f.useCase.Execute(context.Background(), input)

	var leaseErr *domainerror.LeaseError
	if !errors.As(err, &leaseErr) || leaseErr.Code != domainerror.ErrCodeInvalidLeasePeriod {
		t.Fatalf("expected invalid lease period error, got %v", err)
	}
	if len(f.leaseRepo.created) != 0 {
		t.Error("expected no lease created")
	}
}

func TestCreateLease_RentDueDayBounds(t *testing.T) {
	for _, day := range []int{0, -1, 29, 31} {
		f := newLeaseFixture()
		input := f.input()
		input.RentDueDay = day

		_, err := f.useCase.Execute(context.Background(), input)

		var leaseErr *domainerror.LeaseError
		if !errors.As(err, &leaseErr) || leaseErr.Code != domainerror.ErrCodeInvalidRentDueDay {
			t.Errorf("day %d: expected invalid rent due day error, got %v", day, err)
		}
	}
}

func TestCreateLease_RoomNotAvailable(t *testing.T) {
	f := newLeaseFixture()
	f.room.Available = false

	_, err := f.useCase.Execute(context.Background(), f.input())

	var propErr *domainerror.PropertyError
	if !errors.As(err, &propErr) || propErr.Code != domainerror.ErrCodeRoomNotAvailable {
		t.Fatalf("expected room not available error, got %v", err)
	}
}

func TestCreateLease_PropertyOwnedByAnotherUser(t *testing.T) {
	f := newLeaseFixture()
	f.property.UserID = uuid.New()

	_, err := f.useCase.Execute(context.Background(), f.input())

	var propErr *domainerror.PropertyError
	if !errors.As(err, &propErr) || propErr.Code != domainerror.ErrCodePropertyNotFound {
		t.Fatalf("expected property not found error, got %v", err)
	}
}

func TestTerminateLease_FreesRoom(t *testing.T) {
	f := newLeaseFixture()

	output, err := f.useCase.Execute(context.Background(), f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.leaseRepo.leases[output.Lease.ID] = output.Lease
	f.room.Available = false

	terminate := NewTerminateLeaseUseCase(f.leaseRepo, f.roomRepo)
	terminated, err := terminate.Execute(context.Background(), TerminateLeaseInput{
		UserID:  f.userID,
		LeaseID: output.Lease.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if terminated.Lease.Status != entity.LeaseStatusTerminated {
		t.Errorf("expected status terminated, got %s", terminated.Lease.Status)
	}
	if terminated.Lease.TerminatedAt == nil {
		t.Error("expected terminated_at to be set")
	}
	if f.room.Available != true {
		t.Error("expected room to be released")
	}
}
