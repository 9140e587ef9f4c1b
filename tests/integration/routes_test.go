// Route and network integration tests for gazetteer.
// Implements: docs/ARCHITECTURE § CLI.
package integration

import (
	"strings"
	"testing"
)

func TestRouteAnyOverDataset(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteDataset(
		`{"kind":"way","id":"w1","coords":[{"x":0,"y":0},{"x":1,"y":0}]}`,
		`{"kind":"way","id":"w2","coords":[{"x":1,"y":0},{"x":1,"y":2}]}`,
	)

	result := env.MustRunGazetteer("--json", "route", "any", "--from", "0,0", "--to", "1,2")
	route := ParseJSON[[]RouteStep](t, result.Stdout)
	if len(route) != 3 {
		t.Fatalf("route has %d steps, want 3: %+v", len(route), route)
	}
	if route[0].Way != "w1" || route[0].Dist != 0 {
		t.Errorf("first step = %+v, want w1 at distance 0", route[0])
	}
	if route[1].Way != "w2" || route[1].Dist != 1 {
		t.Errorf("second step = %+v, want w2 at distance 1", route[1])
	}
	last := route[len(route)-1]
	if last.Way != "" || last.Dist != 3 {
		t.Errorf("last step = %+v, want no way at distance 3", last)
	}
}

func TestRouteAnyEndpointOffNetwork(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteDataset(
		`{"kind":"way","id":"w1","coords":[{"x":0,"y":0},{"x":1,"y":0}]}`,
	)

	result := env.RunGazetteer("route", "any", "--from", "0,0", "--to", "5,5")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit for endpoint off the network")
	}
	if !strings.Contains(result.Stderr, "not found") {
		t.Errorf("stderr = %q, want mention of not found", result.Stderr)
	}
}

func TestRouteCycleOverDataset(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteDataset(
		`{"kind":"way","id":"ab","coords":[{"x":0,"y":0},{"x":1,"y":0}]}`,
		`{"kind":"way","id":"bc","coords":[{"x":1,"y":0},{"x":1,"y":1}]}`,
		`{"kind":"way","id":"ca","coords":[{"x":1,"y":1},{"x":0,"y":0}]}`,
	)

	result := env.MustRunGazetteer("route", "cycle", "--from", "0,0")
	lines := Lines(result.Stdout)
	if len(lines) != 4 {
		t.Fatalf("cycle walk has %d steps, want 4:\n%s", len(lines), result.Stdout)
	}
	if !strings.HasSuffix(lines[len(lines)-1], ".") {
		t.Errorf("last step %q should end the walk without a way", lines[len(lines)-1])
	}
}

func TestRouteCycleAcyclicNetwork(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteDataset(
		`{"kind":"way","id":"w1","coords":[{"x":0,"y":0},{"x":1,"y":0}]}`,
		`{"kind":"way","id":"w2","coords":[{"x":1,"y":0},{"x":2,"y":0}]}`,
	)

	result := env.RunGazetteer("route", "cycle", "--from", "0,0")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit on an acyclic network")
	}
	if !strings.Contains(result.Stderr, "no cycle") {
		t.Errorf("stderr = %q, want mention of no cycle", result.Stderr)
	}
}

func TestWaysFrom(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteDataset(
		`{"kind":"way","id":"w1","coords":[{"x":0,"y":0},{"x":1,"y":0}]}`,
		`{"kind":"way","id":"w2","coords":[{"x":1,"y":0},{"x":1,"y":2}]}`,
	)

	result := env.MustRunGazetteer("way", "from", "--at", "1,0")
	lines := Lines(result.Stdout)
	if len(lines) != 2 {
		t.Fatalf("way from returned %d connections, want 2:\n%s", len(lines), result.Stdout)
	}
	if !strings.HasPrefix(lines[0], "w1 -> (0,0)") {
		t.Errorf("first connection = %q, want w1 -> (0,0)", lines[0])
	}
}
