// Package integration provides CLI integration tests for gazetteer.
// Implements: docs/ARCHITECTURE § CLI.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// gazetteerBin is the path to the built gazetteer binary.
	gazetteerBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetGazetteerBin sets the path to the gazetteer binary (called from TestMain).
func SetGazetteerBin(path string) {
	gazetteerBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own dataset file.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Dataset string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build gazetteer: %v", buildErr)
	}
	if gazetteerBin == "" {
		t.Fatal("gazetteer binary not built (gazetteerBin is empty)")
	}

	return &TestEnv{
		t:       t,
		TempDir: t.TempDir(),
	}
}

// WriteDataset writes the given JSONL lines to a dataset file and
// records it as the dataset passed on every subsequent Run.
func (e *TestEnv) WriteDataset(lines ...string) {
	e.t.Helper()

	path := filepath.Join(e.TempDir, "dataset.jsonl")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write dataset: %v", err)
	}
	e.Dataset = path
}

// CmdResult holds the result of a gazetteer command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunGazetteer executes the gazetteer CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunGazetteer(args ...string) CmdResult {
	e.t.Helper()

	allArgs := args
	if e.Dataset != "" {
		allArgs = append([]string{"--dataset", e.Dataset}, args...)
	}
	cmd := exec.Command(gazetteerBin, allArgs...)
	cmd.Dir = e.TempDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run gazetteer: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunGazetteer executes the gazetteer CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunGazetteer(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunGazetteer(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("gazetteer %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Lines splits command output into non-empty lines.
func Lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// Place mirrors the place entity for JSON parsing.
type Place struct {
	ID   int64  `json:"ID"`
	Name string `json:"Name"`
	Type string `json:"Type"`
	At   Coord  `json:"At"`
}

// Area mirrors the area entity for JSON parsing.
type Area struct {
	ID       int64   `json:"ID"`
	Name     string  `json:"Name"`
	Boundary []Coord `json:"Boundary"`
}

// Coord mirrors the coordinate type for JSON parsing.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RouteStep mirrors one route step for JSON parsing.
type RouteStep struct {
	At   Coord  `json:"At"`
	Way  string `json:"Way"`
	Dist int    `json:"Dist"`
}
