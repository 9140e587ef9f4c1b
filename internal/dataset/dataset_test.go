package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gazetteer/internal/memory"
	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

// writeDataset writes lines to a temp JSONL file and returns its path.
func writeDataset(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, `{"kind":"place","id":1,"name":"old mill","type":"other","at":{"x":2,"y":3}}
{"kind":"area","id":20,"name":"ward","parent":10}
{"kind":"area","id":10,"name":"town","boundary":[{"x":0,"y":0},{"x":9,"y":0},{"x":9,"y":9}]}
{"kind":"way","id":"w1","coords":[{"x":0,"y":0},{"x":1,"y":0}]}
`)

	c := memory.New()
	require.NoError(t, Load(path, c))

	p, err := c.Place(1)
	require.NoError(t, err)
	assert.Equal(t, "old mill", p.Name)
	assert.Equal(t, types.Coord{X: 2, Y: 3}, p.At)

	anc, err := c.Ancestors(20)
	require.NoError(t, err)
	assert.Equal(t, []types.AreaID{10}, anc, "forward parent references resolve")

	coords, err := c.WayCoords("w1")
	require.NoError(t, err)
	assert.Len(t, coords, 2)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeDataset(t, `not json at all
{"kind":"place","id":1,"name":"kept","type":"peak","at":{"x":1,"y":1}}

{"kind":"place","id":2,"name":"also kept","at":{"x":2,"y":2}}
`)

	c := memory.New()
	require.NoError(t, Load(path, c))

	assert.ElementsMatch(t, []types.PlaceID{1, 2}, c.AllPlaces())

	p, err := c.Place(2)
	require.NoError(t, err)
	assert.Equal(t, types.PlaceTypeNone, p.Type, "missing type defaults to none")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		lines   string
		wantErr error
		msg     string
	}{
		{
			name: "duplicate place id",
			lines: `{"kind":"place","id":1,"name":"a","type":"other","at":{"x":0,"y":0}}
{"kind":"place","id":1,"name":"b","type":"other","at":{"x":1,"y":1}}
`,
			wantErr: types.ErrDuplicateID,
		},
		{
			name:    "short way polyline",
			lines:   `{"kind":"way","id":"w1","coords":[{"x":0,"y":0}]}` + "\n",
			wantErr: types.ErrInvalidPolyline,
		},
		{
			name:    "attachment to a missing parent",
			lines:   `{"kind":"area","id":1,"name":"a","parent":99}` + "\n",
			wantErr: types.ErrNotFound,
		},
		{
			name:  "unknown record kind",
			lines: `{"kind":"tunnel","id":1}` + "\n",
			msg:   "unknown record kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(writeDataset(t, tt.lines), memory.New())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.jsonl"), memory.New())
	assert.Error(t, err)
}
