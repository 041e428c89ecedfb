package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palletdesk/pallet-service/internal/domain/model"
)

// standardEuroPallet is the reference fixture from the seed catalog.
func standardEuroPallet() model.Dimensions {
	return model.Dimensions{
		BoardThickness:     2.2,
		UpperBoardLength:   120,
		UpperBoardWidth:    10,
		UpperBoardQuantity: 5,
		LowerBoardLength:   120,
		LowerBoardWidth:    10,
		LowerBoardQuantity: 3,
		ClosureLength:      80,
		ClosureWidth:       10,
		ClosureQuantity:    3,
		BlockLength:        10,
		BlockWidth:         10,
		BlockHeight:        10,
	}
}

func TestDesiCalculator_ComputeVolumes(t *testing.T) {
	calc := NewDesiCalculator()

	tests := []struct {
		name     string
		dims     model.Dimensions
		expected model.Volumes
	}{
		{
			name: "standard euro pallet",
			dims: standardEuroPallet(),
			expected: model.Volumes{
				UpperBoards: 13.2,
				LowerBoards: 7.92,
				Closures:    5.28,
				Blocks:      9,
				Total:       35.4,
			},
		},
		{
			name: "heavy duty pallet",
			dims: model.Dimensions{
				BoardThickness:     3.0,
				UpperBoardLength:   130,
				UpperBoardWidth:    15,
				UpperBoardQuantity: 7,
				LowerBoardLength:   130,
				LowerBoardWidth:    15,
				LowerBoardQuantity: 5,
				ClosureLength:      95,
				ClosureWidth:       15,
				ClosureQuantity:    4,
				BlockLength:        15,
				BlockWidth:         15,
				BlockHeight:        15,
			},
			expected: model.Volumes{
				UpperBoards: 40.95,
				LowerBoards: 29.25,
				Closures:    17.1,
				Blocks:      30.38,
				Total:       117.68,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volumes, err := calc.ComputeVolumes(tt.dims)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, volumes)
		})
	}
}

// TestDesiCalculator_TwoStageRounding pins the contract that components are
// rounded before summation and the total is rounded again. Summing unrounded
// components and rounding once would yield 4.02 here instead of 4.00.
func TestDesiCalculator_TwoStageRounding(t *testing.T) {
	calc := NewDesiCalculator()

	dims := model.Dimensions{
		BoardThickness:     2,
		UpperBoardLength:   25.1,
		UpperBoardWidth:    10,
		UpperBoardQuantity: 2, // 25.1*10*2*2 = 1004 cm³ -> 1.00 desi
		LowerBoardLength:   25.1,
		LowerBoardWidth:    10,
		LowerBoardQuantity: 2,
		ClosureLength:      25.1,
		ClosureWidth:       10,
		ClosureQuantity:    2,
		BlockLength:        4.65,
		BlockWidth:         4,
		BlockHeight:        6, // 4.65*4*6*9 = 1004.4 cm³ -> 1.00 desi
	}

	volumes, err := calc.ComputeVolumes(dims)
	require.NoError(t, err)

	assert.Equal(t, 1.0, volumes.UpperBoards)
	assert.Equal(t, 1.0, volumes.LowerBoards)
	assert.Equal(t, 1.0, volumes.Closures)
	assert.Equal(t, 1.0, volumes.Blocks)
	assert.Equal(t, 4.0, volumes.Total)
}

// TestDesiCalculator_Determinism verifies the pure-function property.
func TestDesiCalculator_Determinism(t *testing.T) {
	calc := NewDesiCalculator()

	first, err := calc.ComputeVolumes(standardEuroPallet())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		again, err := calc.ComputeVolumes(standardEuroPallet())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDesiCalculator_InvalidDimensions(t *testing.T) {
	calc := NewDesiCalculator()

	tests := []struct {
		name          string
		mutate        func(*model.Dimensions)
		expectedField string
	}{
		{
			name:          "zero thickness",
			mutate:        func(d *model.Dimensions) { d.BoardThickness = 0 },
			expectedField: "board_thickness",
		},
		{
			name:          "missing upper board length",
			mutate:        func(d *model.Dimensions) { d.UpperBoardLength = 0 },
			expectedField: "upper_board_length",
		},
		{
			name:          "negative closure width",
			mutate:        func(d *model.Dimensions) { d.ClosureWidth = -10 },
			expectedField: "closure_width",
		},
		{
			name:          "zero lower board quantity",
			mutate:        func(d *model.Dimensions) { d.LowerBoardQuantity = 0 },
			expectedField: "lower_board_quantity",
		},
		{
			name:          "zero block height",
			mutate:        func(d *model.Dimensions) { d.BlockHeight = 0 },
			expectedField: "block_height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := standardEuroPallet()
			tt.mutate(&dims)

			_, err := calc.ComputeVolumes(dims)

			var dimErr *InvalidDimensionError
			require.ErrorAs(t, err, &dimErr)
			assert.Equal(t, tt.expectedField, dimErr.Field)
		})
	}
}
