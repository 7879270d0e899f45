package notegraph

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed construction parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownNote is returned when a queried note is not part of the graph.
var ErrUnknownNote = errors.New("unknown note")

// Note is a pitch-class name plus an octave register, e.g. C4.
type Note struct {
	Name   string `json:"name"`
	Octave int    `json:"octave"`
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// Edge is one outgoing transition with its relative likelihood.
type Edge struct {
	To     Note    `json:"to"`
	Weight float64 `json:"weight"`
}

// Config holds the note-space and edge-weight parameters for Build.
type Config struct {
	Names        []string
	Octaves      []int
	StepWeight   float64
	OctaveWeight float64
}

// DefaultConfig returns the standard 7-name, two-octave note space.
func DefaultConfig() Config {
	return Config{
		Names:        []string{"C", "D", "E", "F", "G", "A", "B"},
		Octaves:      []int{4, 5},
		StepWeight:   0.7,
		OctaveWeight: 0.3,
	}
}

// Graph is the fixed directed graph of notes with weighted transition
// edges. Built once, never mutated; safe for concurrent reads.
type Graph struct {
	notes []Note
	edges map[Note][]Edge
}

// Build constructs the note graph: every note gets an edge to the next and
// previous pitch class in the same octave (StepWeight) and one to the same
// pitch class in every other octave (OctaveWeight). Construction is
// deterministic; rebuilding with the same config yields an identical graph.
func Build(cfg Config) (*Graph, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	g := &Graph{edges: make(map[Note][]Edge, len(cfg.Names)*len(cfg.Octaves))}
	for _, oct := range cfg.Octaves {
		for _, name := range cfg.Names {
			g.notes = append(g.notes, Note{Name: name, Octave: oct})
		}
	}

	n := len(cfg.Names)
	for _, oct := range cfg.Octaves {
		for i, name := range cfg.Names {
			from := Note{Name: name, Octave: oct}
			next := Note{Name: cfg.Names[(i+1)%n], Octave: oct}
			prev := Note{Name: cfg.Names[(i-1+n)%n], Octave: oct}

			out := []Edge{
				{To: next, Weight: cfg.StepWeight},
				{To: prev, Weight: cfg.StepWeight},
			}
			for _, other := range cfg.Octaves {
				if other != oct {
					out = append(out, Edge{To: Note{Name: name, Octave: other}, Weight: cfg.OctaveWeight})
				}
			}
			g.edges[from] = out
		}
	}
	return g, nil
}

func validate(cfg Config) error {
	if len(cfg.Names) != 7 {
		return fmt.Errorf("%w: need exactly 7 pitch-class names, got %d", ErrInvalidArgument, len(cfg.Names))
	}
	seen := make(map[string]bool, len(cfg.Names))
	for _, name := range cfg.Names {
		if name == "" {
			return fmt.Errorf("%w: empty pitch-class name", ErrInvalidArgument)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate pitch-class name %q", ErrInvalidArgument, name)
		}
		seen[name] = true
	}
	if len(cfg.Octaves) == 0 {
		return fmt.Errorf("%w: need at least one octave", ErrInvalidArgument)
	}
	seenOct := make(map[int]bool, len(cfg.Octaves))
	for _, oct := range cfg.Octaves {
		if seenOct[oct] {
			return fmt.Errorf("%w: duplicate octave %d", ErrInvalidArgument, oct)
		}
		seenOct[oct] = true
	}
	if cfg.StepWeight <= 0 || cfg.OctaveWeight <= 0 {
		return fmt.Errorf("%w: edge weights must be positive", ErrInvalidArgument)
	}
	if cfg.OctaveWeight >= cfg.StepWeight {
		return fmt.Errorf("%w: octave weight %.3f must be below step weight %.3f",
			ErrInvalidArgument, cfg.OctaveWeight, cfg.StepWeight)
	}
	return nil
}

// Notes returns all notes in construction order (octave-major).
// The returned slice must not be modified.
func (g *Graph) Notes() []Note {
	return g.notes
}

// Neighbors returns the outgoing edges of a note in deterministic order:
// next pitch class, previous pitch class, then other octaves.
func (g *Graph) Neighbors(n Note) ([]Edge, error) {
	out, ok := g.edges[n]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNote, n)
	}
	return out, nil
}

// Contains reports whether n is part of the graph's closed node set.
func (g *Graph) Contains(n Note) bool {
	_, ok := g.edges[n]
	return ok
}

// NodeCount returns the number of notes.
func (g *Graph) NodeCount() int {
	return len(g.notes)
}

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, out := range g.edges {
		total += len(out)
	}
	return total
}
