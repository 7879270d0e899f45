package render

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"aleatoria/motif/internal/melody"
	"aleatoria/motif/internal/notegraph"
)

func testGraph(t *testing.T) *notegraph.Graph {
	t.Helper()
	g, err := notegraph.Build(notegraph.DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestLine(t *testing.T) {
	g := testGraph(t)
	rng := rand.New(rand.NewPCG(1, 1))
	result, err := melody.Generate(g, 8, melody.Happy, rng)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Line(&buf, result); err != nil {
		t.Fatalf("Line: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Melody") {
		t.Error("output should contain the melody series")
	}
	if !strings.Contains(html, "Intensity") {
		t.Error("output should contain the intensity series")
	}
	if !strings.Contains(html, "happy") {
		t.Error("output should mention the mood")
	}
}

func TestLine_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Line(&buf, nil); !errors.Is(err, notegraph.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGraphChart(t *testing.T) {
	g := testGraph(t)
	var buf bytes.Buffer
	if err := GraphChart(&buf, g, ""); err != nil {
		t.Fatalf("GraphChart: %v", err)
	}
	html := buf.String()
	for _, name := range []string{"C4", "B5"} {
		if !strings.Contains(html, name) {
			t.Errorf("output should contain node %s", name)
		}
	}
}

func TestGraphChart_WithMood(t *testing.T) {
	g := testGraph(t)
	var buf bytes.Buffer
	if err := GraphChart(&buf, g, melody.Calm); err != nil {
		t.Fatalf("GraphChart: %v", err)
	}
	if !strings.Contains(buf.String(), "calm") {
		t.Error("output should mention the mood")
	}
}

func TestGraphChart_UnknownMood(t *testing.T) {
	g := testGraph(t)
	var buf bytes.Buffer
	err := GraphChart(&buf, g, melody.Mood("bogus"))
	if !errors.Is(err, notegraph.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
