package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWay(t *testing.T) {
	tests := []struct {
		name       string
		coords     []Coord
		wantErr    error
		wantEnd1   Coord
		wantEnd2   Coord
		wantLength Distance
	}{
		{
			name:    "empty polyline fails",
			coords:  nil,
			wantErr: ErrInvalidPolyline,
		},
		{
			name:    "single point fails",
			coords:  []Coord{{1, 1}},
			wantErr: ErrInvalidPolyline,
		},
		{
			name:       "unit segment",
			coords:     []Coord{{0, 0}, {1, 0}},
			wantEnd1:   Coord{0, 0},
			wantEnd2:   Coord{1, 0},
			wantLength: 1,
		},
		{
			name:       "diagonal segment length is floored",
			coords:     []Coord{{0, 0}, {1, 1}},
			wantEnd1:   Coord{0, 0},
			wantEnd2:   Coord{1, 1},
			wantLength: 1,
		},
		{
			name:       "multi segment sums floored lengths",
			coords:     []Coord{{0, 0}, {3, 4}, {3, 6}},
			wantEnd1:   Coord{0, 0},
			wantEnd2:   Coord{3, 6},
			wantLength: 7,
		},
		{
			name:       "loop way shares endpoints",
			coords:     []Coord{{0, 0}, {0, 2}, {2, 2}, {0, 0}},
			wantEnd1:   Coord{0, 0},
			wantEnd2:   Coord{0, 0},
			wantLength: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWay("w", tt.coords)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd1, w.End1)
			assert.Equal(t, tt.wantEnd2, w.End2)
			assert.Equal(t, tt.wantLength, w.Length)
			assert.Equal(t, tt.coords, w.Coords)
		})
	}
}

func TestValidPlaceType(t *testing.T) {
	for _, pt := range []PlaceType{
		PlaceTypeOther, PlaceTypeFirepit, PlaceTypeShelter, PlaceTypeParking,
		PlaceTypePeak, PlaceTypeBay, PlaceTypeArea, PlaceTypeNone,
	} {
		assert.True(t, ValidPlaceType(pt), "type %q should be valid", pt)
	}

	assert.False(t, ValidPlaceType("castle"))
	assert.False(t, ValidPlaceType(""))
}
