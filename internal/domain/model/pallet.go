package model

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlockCount is the fixed number of support blocks per pallet. It is a
// structural property of the pallet design, not a user-supplied quantity.
const BlockCount = 9

// Dimensions holds the physical measurements of a pallet's components.
// All lengths are in centimeters.
type Dimensions struct {
	// BoardThickness applies to upper boards, lower boards and closures.
	BoardThickness float64 `bson:"board_thickness" json:"board_thickness" example:"2.2"`

	UpperBoardLength   float64 `bson:"upper_board_length" json:"upper_board_length" example:"120"`
	UpperBoardWidth    float64 `bson:"upper_board_width" json:"upper_board_width" example:"10"`
	UpperBoardQuantity int     `bson:"upper_board_quantity" json:"upper_board_quantity" example:"5"`

	LowerBoardLength   float64 `bson:"lower_board_length" json:"lower_board_length" example:"120"`
	LowerBoardWidth    float64 `bson:"lower_board_width" json:"lower_board_width" example:"10"`
	LowerBoardQuantity int     `bson:"lower_board_quantity" json:"lower_board_quantity" example:"3"`

	ClosureLength   float64 `bson:"closure_length" json:"closure_length" example:"80"`
	ClosureWidth    float64 `bson:"closure_width" json:"closure_width" example:"10"`
	ClosureQuantity int     `bson:"closure_quantity" json:"closure_quantity" example:"3"`

	BlockLength float64 `bson:"block_length" json:"block_length" example:"10"`
	BlockWidth  float64 `bson:"block_width" json:"block_width" example:"10"`
	BlockHeight float64 `bson:"block_height" json:"block_height" example:"10"`
}

// Volumes holds the derived desi metrics of a pallet (1 desi = 1000 cm³).
// These are always computed from Dimensions, never supplied by clients.
type Volumes struct {
	UpperBoards float64 `bson:"upper_board_volume" json:"upper_board_volume" example:"13.2"`
	LowerBoards float64 `bson:"lower_board_volume" json:"lower_board_volume" example:"7.92"`
	Closures    float64 `bson:"closure_volume" json:"closure_volume" example:"5.28"`
	Blocks      float64 `bson:"block_volume" json:"block_volume" example:"9"`
	Total       float64 `bson:"total_volume" json:"total_volume" example:"35.4"`
}

// Pallet represents a pallet specification registered under a company.
type Pallet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID primitive.ObjectID `bson:"company_id" json:"company_id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price" example:"250"`

	Dimensions Dimensions `bson:"dimensions" json:"dimensions"`
	Volumes    Volumes    `bson:"volumes" json:"volumes"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// formatDim renders a length without trailing zeros ("120", "2.2").
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UpperBoardLabel renders the upper board dimensions as "LxWxT (N adet)".
// The label format matches the legacy inventory reports and is used verbatim
// in CSV, PDF and XLSX exports.
func (d Dimensions) UpperBoardLabel() string {
	return fmt.Sprintf("%sx%sx%s (%d adet)",
		formatDim(d.UpperBoardLength), formatDim(d.UpperBoardWidth), formatDim(d.BoardThickness), d.UpperBoardQuantity)
}

// LowerBoardLabel renders the lower board dimensions as "LxWxT (N adet)".
func (d Dimensions) LowerBoardLabel() string {
	return fmt.Sprintf("%sx%sx%s (%d adet)",
		formatDim(d.LowerBoardLength), formatDim(d.LowerBoardWidth), formatDim(d.BoardThickness), d.LowerBoardQuantity)
}

// ClosureLabel renders the closure board dimensions as "LxWxT (N adet)".
func (d Dimensions) ClosureLabel() string {
	return fmt.Sprintf("%sx%sx%s (%d adet)",
		formatDim(d.ClosureLength), formatDim(d.ClosureWidth), formatDim(d.BoardThickness), d.ClosureQuantity)
}

// BlockLabel renders the block dimensions as "LxWxH (9 adet)".
func (d Dimensions) BlockLabel() string {
	return fmt.Sprintf("%sx%sx%s (%d adet)",
		formatDim(d.BlockLength), formatDim(d.BlockWidth), formatDim(d.BlockHeight), BlockCount)
}
