package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// CreatePropertyRequest represents the request body for property creation.
type CreatePropertyRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	PostalCode    string           `json:"postal_code"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	LandValue     *decimal.Decimal `json:"land_value"`
	PurchaseDate  *string          `json:"purchase_date"` // YYYY-MM-DD
	Notes         string           `json:"notes"`
}

// UpdatePropertyRequest represents the request body for property update.
// Absent fields are left unchanged.
type UpdatePropertyRequest struct {
	Name          *string          `json:"name"`
	Address       *string          `json:"address"`
	City          *string          `json:"city"`
	State         *string          `json:"state"`
	PostalCode    *string          `json:"postal_code"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	LandValue     *decimal.Decimal `json:"land_value"`
	PurchaseDate  *string          `json:"purchase_date"` // YYYY-MM-DD
	Notes         *string          `json:"notes"`
}

// CreateRoomRequest represents the request body for room creation.
type CreateRoomRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	MonthlyRent decimal.Decimal  `json:"monthly_rent"`
	SizeSqm     *decimal.Decimal `json:"size_sqm"`
	Furnished   bool             `json:"furnished"`
}

// UpdateRoomRequest represents the request body for room update.
type UpdateRoomRequest struct {
	Name        *string          `json:"name"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent"`
	SizeSqm     *decimal.Decimal `json:"size_sqm"`
	Furnished   *bool            `json:"furnished"`
	Available   *bool            `json:"available"`
}

// PropertyResponse represents a property in API responses.
type PropertyResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	PostalCode    string           `json:"postal_code"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	LandValue     *decimal.Decimal `json:"land_value,omitempty"`
	PurchaseDate  *time.Time       `json:"purchase_date,omitempty"`
	Notes         string           `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Rooms         []RoomResponse   `json:"rooms,omitempty"`
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	ID          string           `json:"id"`
	PropertyID  string           `json:"property_id"`
	Name        string           `json:"name"`
	MonthlyRent decimal.Decimal  `json:"monthly_rent"`
	SizeSqm     *decimal.Decimal `json:"size_sqm,omitempty"`
	Furnished   bool             `json:"furnished"`
	Available   bool             `json:"available"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PropertyListResponse represents the response for listing properties.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// ToPropertyResponse converts a domain Property entity to a PropertyResponse DTO.
func ToPropertyResponse(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:            property.ID.String(),
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
	}
}

// ToPropertyDetailResponse converts a property and its rooms to a PropertyResponse DTO.
func ToPropertyDetailResponse(property *entity.Property, rooms []*entity.Room) PropertyResponse {
	response := ToPropertyResponse(property)
	response.Rooms = make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		response.Rooms = append(response.Rooms, ToRoomResponse(room))
	}
	return response
}

// ToRoomResponse converts a domain Room entity to a RoomResponse DTO.
func ToRoomResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		PropertyID:  room.PropertyID.String(),
		Name:        room.Name,
		MonthlyRent: room.MonthlyRent,
		SizeSqm:     room.SizeSqm,
		Furnished:   room.Furnished,
		Available:   room.Available,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

// ToPropertyListResponse converts domain Property entities to a list response.
func ToPropertyListResponse(properties []*entity.Property) PropertyListResponse {
	response := PropertyListResponse{
		Properties: make([]PropertyResponse, 0, len(properties)),
	}
	for _, property := range properties {
		response.Properties = append(response.Properties, ToPropertyResponse(property))
	}
	return response
}
