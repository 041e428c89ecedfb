// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
// Update requests enumerate the legal mutable fields per entity explicitly;
// unknown fields are rejected at bind time.
package dto

import (
	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DimensionsPayload carries the dimensional inputs of a pallet.
// All lengths are centimeters. The dimensional fields are interdependent
// (board thickness is shared across components), so dimensions are always
// submitted and replaced as a whole.
//
// @Description Pallet component dimensions in centimeters
type DimensionsPayload struct {
	BoardThickness float64 `json:"board_thickness" example:"2.2"`

	UpperBoardLength   float64 `json:"upper_board_length" example:"120"`
	UpperBoardWidth    float64 `json:"upper_board_width" example:"10"`
	UpperBoardQuantity int     `json:"upper_board_quantity" example:"5"`

	LowerBoardLength   float64 `json:"lower_board_length" example:"120"`
	LowerBoardWidth    float64 `json:"lower_board_width" example:"10"`
	LowerBoardQuantity int     `json:"lower_board_quantity" example:"3"`

	ClosureLength   float64 `json:"closure_length" example:"80"`
	ClosureWidth    float64 `json:"closure_width" example:"10"`
	ClosureQuantity int     `json:"closure_quantity" example:"3"`

	BlockLength float64 `json:"block_length" example:"10"`
	BlockWidth  float64 `json:"block_width" example:"10"`
	BlockHeight float64 `json:"block_height" example:"10"`
} // @name DimensionsPayload

// ToModel converts the payload to the domain dimensions type.
func (p *DimensionsPayload) ToModel() model.Dimensions {
	return model.Dimensions{
		BoardThickness:     p.BoardThickness,
		UpperBoardLength:   p.UpperBoardLength,
		UpperBoardWidth:    p.UpperBoardWidth,
		UpperBoardQuantity: p.UpperBoardQuantity,
		LowerBoardLength:   p.LowerBoardLength,
		LowerBoardWidth:    p.LowerBoardWidth,
		LowerBoardQuantity: p.LowerBoardQuantity,
		ClosureLength:      p.ClosureLength,
		ClosureWidth:       p.ClosureWidth,
		ClosureQuantity:    p.ClosureQuantity,
		BlockLength:        p.BlockLength,
		BlockWidth:         p.BlockWidth,
		BlockHeight:        p.BlockHeight,
	}
}

// CreateCompanyRequest represents the JSON request body for creating a company.
//
// @Description Request to register a new company
// @Example {"name": "Ahşap Palet A.Ş.", "contact_email": "info@ahsappalet.com"}
type CreateCompanyRequest struct {
	// Name is the company display name.
	Name string `json:"name" binding:"required,max=100" example:"Ahşap Palet A.Ş."`
	// ContactEmail is the company's contact address.
	ContactEmail string `json:"contact_email" binding:"omitempty,email" example:"info@ahsappalet.com"`
} // @name CreateCompanyRequest

// UpdateCompanyRequest represents the JSON request body for updating a company.
// Only the listed fields are mutable; nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email,omitempty" binding:"omitempty,email"`
} // @name UpdateCompanyRequest

// Validate performs custom validation on the update request.
func (r *UpdateCompanyRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// CreatePalletRequest represents the JSON request body for registering a pallet.
//
// @Description Request to register a pallet specification under a company
type CreatePalletRequest struct {
	// Name is the pallet display name.
	Name string `json:"name" binding:"required,max=100" example:"Standart Euro Palet"`
	// CompanyID is the hex id of the owning company.
	CompanyID string `json:"company_id" binding:"required" example:"5f8d0d55b54764421b7156c3"`
	// Price is the unit price; must be non-negative.
	Price *float64 `json:"price" binding:"required" example:"250"`
	// Dimensions are the dimensional inputs used to derive the volume metrics.
	Dimensions DimensionsPayload `json:"dimensions" binding:"required"`
} // @name CreatePalletRequest

// Validate performs custom validation on the create request.
// Dimensional positivity is enforced by the volume calculator, which reports
// the offending field; only request-shape concerns are checked here.
func (r *CreatePalletRequest) Validate() error {
	if r.Price == nil {
		return &ValidationError{Field: "price", Message: "is required"}
	}
	if *r.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

// UpdatePalletRequest represents the JSON request body for updating a pallet.
// It enumerates the legal mutable fields; nil fields are left unchanged.
// Changing Dimensions always triggers a recomputation of the derived volumes,
// and changing CompanyID revalidates ownership of the target company.
type UpdatePalletRequest struct {
	Name       *string            `json:"name,omitempty" binding:"omitempty,max=100"`
	CompanyID  *string            `json:"company_id,omitempty"`
	Price      *float64           `json:"price,omitempty"`
	Dimensions *DimensionsPayload `json:"dimensions,omitempty"`
} // @name UpdatePalletRequest

// Validate performs custom validation on the update request.
func (r *UpdatePalletRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if r.Price != nil && *r.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}
