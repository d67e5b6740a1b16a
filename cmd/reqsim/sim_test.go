package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestRunSimulation_AllSucceed verifies the happy path summary.
func TestRunSimulation_AllSucceed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := simConfig{requests: 20, workers: 3}

	require.NoError(t, runSimulation(cfg, zap.NewNop(), &out))
	assert.Equal(t, "handled 20 requests across 3 workers (0 failed)\n", out.String())
}

// TestRunSimulation_FailEvery verifies failed requests are counted and their
// scopes still release cleanly.
func TestRunSimulation_FailEvery(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := simConfig{requests: 10, workers: 2, failEvery: 5}

	require.NoError(t, runSimulation(cfg, zap.NewNop(), &out))
	// Requests 5 and 10 fail.
	assert.Equal(t, "handled 10 requests across 2 workers (2 failed)\n", out.String())
}

// TestRunSimulation_RejectsBadConfig verifies the argument guard.
func TestRunSimulation_RejectsBadConfig(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.Error(t, runSimulation(simConfig{requests: 0, workers: 1}, zap.NewNop(), &out))
	require.Error(t, runSimulation(simConfig{requests: 1, workers: 0}, zap.NewNop(), &out))
}

// TestRunShadowWalk verifies the printed walk restores each enclosing value in
// order.
func TestRunShadowWalk(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, runShadowWalk(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)

	want := []string{"root", "outer", "middle", "inner", "middle", "outer", "root"}
	for i, line := range lines {
		assert.True(t, strings.HasSuffix(line, "-> "+want[i]), "line %d: %q", i, line)
	}
}
