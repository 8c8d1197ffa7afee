// Package puzzlefile loads breach-protocol puzzles from YAML documents.
//
// The format mirrors what a human transcribes from the screen:
//
//	grid:
//	  - [1C, 55, BD]
//	  - [E9, 1C, FF]
//	  - [55, BD, 1C]
//	daemons:
//	  - sequence: [1C, BD]
//	  - sequence: [55, E9, FF]
//	    cost: 5
//	buffer: 6
//
// A daemon's cost is optional; when omitted (or zero) it defaults to the
// sequence length, matching puzzle.Builder semantics. Decoding feeds the
// Builder, so all structural validation and its sentinel errors apply
// unchanged on top of ErrDecode for malformed YAML.
package puzzlefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/breach/puzzle"
)

// ErrDecode indicates a document that is not valid YAML of the expected shape.
var ErrDecode = errors.New("puzzlefile: cannot decode puzzle document")

// document is the on-disk shape.
type document struct {
	Grid    [][]string    `yaml:"grid"`
	Daemons []daemonEntry `yaml:"daemons"`
	Buffer  int           `yaml:"buffer"`
}

type daemonEntry struct {
	Sequence []string `yaml:"sequence"`
	Cost     int      `yaml:"cost,omitempty"`
}

// Load reads and decodes one puzzle file.
func Load(path string) (*puzzle.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses one YAML puzzle document from r and freezes it into a
// Puzzle via the Builder.
func Decode(r io.Reader) (*puzzle.Puzzle, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := puzzle.NewBuilder().
		Grid(doc.Grid).
		BufferSize(doc.Buffer)

	// Costs default per-daemon: an omitted cost means "worth its length".
	costs := make([]int, 0, len(doc.Daemons))
	explicit := false
	for _, d := range doc.Daemons {
		b.Daemon(d.Sequence...)
		cost := d.Cost
		if cost == 0 {
			cost = len(d.Sequence)
		} else {
			explicit = true
		}
		costs = append(costs, cost)
	}
	if explicit {
		b.Costs(costs...)
	}

	return b.Build()
}
