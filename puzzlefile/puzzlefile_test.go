package puzzlefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/puzzlefile"
	"github.com/katalvlaran/breach/symbol"
)

const validDoc = `
grid:
  - [1C, 55, BD]
  - [E9, 1C, FF]
  - [55, BD, 1C]
daemons:
  - sequence: [1C, BD]
  - sequence: [55, E9, FF]
    cost: 5
buffer: 6
`

func TestDecode_ValidDocument(t *testing.T) {
	p, err := puzzlefile.Decode(strings.NewReader(validDoc))
	require.NoError(t, err)

	assert.Equal(t, 3, p.Rows())
	assert.Equal(t, 3, p.Cols())
	assert.Equal(t, 6, p.BufferSize())
	assert.Equal(t, 2, p.DaemonCount())
	assert.Equal(t, []symbol.Symbol{symbol.Hex1C, symbol.HexBD}, p.Daemon(0))
	assert.Equal(t, symbol.HexFF, p.At(puzzle.Coord{Row: 1, Col: 2}))
}

func TestDecode_CostDefaultsToLength(t *testing.T) {
	p, err := puzzlefile.Decode(strings.NewReader(validDoc))
	require.NoError(t, err)

	// Omitted cost means "worth its length"; explicit cost is honored.
	assert.Equal(t, 2, p.Cost(0))
	assert.Equal(t, 5, p.Cost(1))
}

func TestDecode_MalformedYAML(t *testing.T) {
	_, err := puzzlefile.Decode(strings.NewReader("grid: ["))
	assert.ErrorIs(t, err, puzzlefile.ErrDecode)
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	doc := `
grid:
  - [1C]
daemons:
  - sequence: [1C]
buffer: 2
solver: bnb
`
	_, err := puzzlefile.Decode(strings.NewReader(doc))
	assert.ErrorIs(t, err, puzzlefile.ErrDecode)
}

func TestDecode_BuilderErrorsPassThrough(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "unknown label",
			doc:     "grid:\n  - [1C, ZZ]\ndaemons:\n  - sequence: [1C]\nbuffer: 2\n",
			wantErr: symbol.ErrUnknownLabel,
		},
		{
			name:    "ragged grid",
			doc:     "grid:\n  - [1C, 55]\n  - [1C]\ndaemons:\n  - sequence: [1C]\nbuffer: 2\n",
			wantErr: puzzle.ErrNonRectangular,
		},
		{
			name:    "missing buffer",
			doc:     "grid:\n  - [1C, 55]\ndaemons:\n  - sequence: [1C]\n",
			wantErr: puzzle.ErrBufferSize,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzlefile.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o600))

	p, err := puzzlefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, p.BufferSize())

	_, err = puzzlefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
