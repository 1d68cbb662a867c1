package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// DeleteRoomInput represents the input for room deletion.
type DeleteRoomInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	RoomID     uuid.UUID
}

// DeleteRoomUseCase handles room deletion logic.
type DeleteRoomUseCase struct {
	propertyRepo adapter.PropertyRepository
	roomRepo     adapter.RoomRepository
}

// NewDeleteRoomUseCase creates a new DeleteRoomUseCase instance.
func NewDeleteRoomUseCase(propertyRepo adapter.PropertyRepository, roomRepo adapter.RoomRepository) *DeleteRoomUseCase {
	return &DeleteRoomUseCase{propertyRepo: propertyRepo, roomRepo: roomRepo}
}

// Execute performs the room deletion.
func (uc *DeleteRoomUseCase) Execute(ctx context.Context, input DeleteRoomInput) error {
	property, err := findOwnedProperty(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return err
	}

	room, err := uc.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil || room == nil || room.PropertyID != property.ID {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeRoomNotFound,
			"room not found",
			domainerror.ErrRoomNotFound,
		)
	}

	if err := uc.roomRepo.Delete(ctx, room.ID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
