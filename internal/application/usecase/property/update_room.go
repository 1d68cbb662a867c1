package property

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// UpdateRoomInput represents the input for room update.
// Nil pointer fields are left unchanged.
type UpdateRoomInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	RoomID      uuid.UUID
	Name        *string
	MonthlyRent *decimal.Decimal
	SizeSqm     *decimal.Decimal
	Furnished   *bool
	Available   *bool
}

// UpdateRoomOutput represents the output of room update.
type UpdateRoomOutput struct {
	Room *entity.Room
}

// UpdateRoomUseCase handles room update logic.
type UpdateRoomUseCase struct {
	propertyRepo adapter.PropertyRepository
	roomRepo     adapter.RoomRepository
}

// NewUpdateRoomUseCase creates a new UpdateRoomUseCase instance.
func NewUpdateRoomUseCase(propertyRepo adapter.PropertyRepository, roomRepo adapter.RoomRepository) *UpdateRoomUseCase {
	return &UpdateRoomUseCase{propertyRepo: propertyRepo, roomRepo: roomRepo}
}

// Execute performs the room update.
func (uc *UpdateRoomUseCase) Execute(ctx context.Context, input UpdateRoomInput) (*UpdateRoomOutput, error) {
	property, err := findOwnedProperty(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	room, err := uc.findRoom(ctx, property.ID, input.RoomID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeRoomNameRequired,
				"room name is required",
				domainerror.ErrRoomNameRequired,
			)
		}
		room.Name = name
	}
	if input.MonthlyRent != nil {
		if input.MonthlyRent.IsNegative() {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeInvalidMonthlyRent,
				"monthly rent must not be negative",
				domainerror.ErrInvalidMonthlyRent,
			)
		}
		room.MonthlyRent = *input.MonthlyRent
	}
	if input.SizeSqm != nil {
		room.SizeSqm = input.SizeSqm
	}
	if input.Furnished != nil {
		room.Furnished = *input.Furnished
	}
	if input.Available != nil {
		room.Available = *input.Available
	}
	room.UpdatedAt = time.Now().UTC()

	if err := uc.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return &UpdateRoomOutput{Room: room}, nil
}

func (uc *UpdateRoomUseCase) findRoom(ctx context.Context, propertyID, roomID uuid.UUID) (*entity.Room, error) {
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil || room == nil || room.PropertyID != propertyID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeRoomNotFound,
			"room not found",
			domainerror.ErrRoomNotFound,
		)
	}
	return room, nil
}
