package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// desiDivisor converts cm³ to desi (1 desi = 1000 cm³).
var desiDivisor = decimal.NewFromInt(1000)

// InvalidDimensionError reports a missing or non-positive dimensional field.
// The Field value is the JSON name of the offending input.
type InvalidDimensionError struct {
	Field string
}

// Error returns the error message for InvalidDimensionError.
func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("%s: must be a positive number", e.Field)
}

// VolumeCalculator defines the interface for pallet volume computation.
type VolumeCalculator interface {
	// ComputeVolumes derives the desi volume metrics from dimensional inputs.
	// It is pure and deterministic; invalid inputs yield an
	// *InvalidDimensionError naming the offending field.
	ComputeVolumes(d model.Dimensions) (model.Volumes, error)
}

// DesiCalculator implements VolumeCalculator using the desi measurement
// scheme (board/closure/block dimensions, fixed 9 support blocks).
//
// Arithmetic runs on fixed-point decimals so that inputs arriving as either
// binary floats or decimal strings produce identical rounded results. Each
// component volume is rounded to 2 decimal places before summation and the
// total is rounded again after; this two-stage rounding matches the legacy
// inventory reports and must not be collapsed into a single rounding step.
type DesiCalculator struct{}

// NewDesiCalculator creates a new DesiCalculator.
func NewDesiCalculator() *DesiCalculator {
	return &DesiCalculator{}
}

// ComputeVolumes derives all five volume metrics from the given dimensions.
func (c *DesiCalculator) ComputeVolumes(d model.Dimensions) (model.Volumes, error) {
	if err := validateDimensions(d); err != nil {
		return model.Volumes{}, err
	}

	upper := componentDesi(d.UpperBoardLength, d.UpperBoardWidth, d.BoardThickness, int64(d.UpperBoardQuantity))
	lower := componentDesi(d.LowerBoardLength, d.LowerBoardWidth, d.BoardThickness, int64(d.LowerBoardQuantity))
	closure := componentDesi(d.ClosureLength, d.ClosureWidth, d.BoardThickness, int64(d.ClosureQuantity))
	block := componentDesi(d.BlockLength, d.BlockWidth, d.BlockHeight, model.BlockCount)

	total := upper.Add(lower).Add(closure).Add(block).Round(2)

	return model.Volumes{
		UpperBoards: upper.InexactFloat64(),
		LowerBoards: lower.InexactFloat64(),
		Closures:    closure.InexactFloat64(),
		Blocks:      block.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}, nil
}

// componentDesi computes one component's volume in desi, rounded to 2 dp.
func componentDesi(length, width, depth float64, quantity int64) decimal.Decimal {
	return decimal.NewFromFloat(length).
		Mul(decimal.NewFromFloat(width)).
		Mul(decimal.NewFromFloat(depth)).
		Mul(decimal.NewFromInt(quantity)).
		Div(desiDivisor).
		Round(2)
}

// validateDimensions checks every dimensional input in declaration order and
// reports the first missing or non-positive field. Zero values are rejected
// rather than silently substituted.
func validateDimensions(d model.Dimensions) error {
	checks := []struct {
		field string
		value float64
	}{
		{"board_thickness", d.BoardThickness},
		{"upper_board_length", d.UpperBoardLength},
		{"upper_board_width", d.UpperBoardWidth},
		{"upper_board_quantity", float64(d.UpperBoardQuantity)},
		{"lower_board_length", d.LowerBoardLength},
		{"lower_board_width", d.LowerBoardWidth},
		{"lower_board_quantity", float64(d.LowerBoardQuantity)},
		{"closure_length", d.ClosureLength},
		{"closure_width", d.ClosureWidth},
		{"closure_quantity", float64(d.ClosureQuantity)},
		{"block_length", d.BlockLength},
		{"block_width", d.BlockWidth},
		{"block_height", d.BlockHeight},
	}

	for _, check := range checks {
		if !(check.value > 0) {
			return &InvalidDimensionError{Field: check.field}
		}
	}
	return nil
}
