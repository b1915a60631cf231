package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcover/internal/config"
	"github.com/katalvlaran/kcover/reach"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "graph.txt", cfg.Input)
	require.Equal(t, int64(32), cfg.Radius)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, reach.StrategyWorklist, cfg.SearchStrategy())
	require.NoError(t, cfg.Validate())
}

func TestDecode(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
radius: 5
workers: 4
strategy: heap
verify: true
`))
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Input:    "graph.txt",
		Radius:   5,
		Workers:  4,
		Strategy: "heap",
		Verify:   true,
	}, cfg)
	require.Equal(t, reach.StrategyHeap, cfg.SearchStrategy())

	cfg, err = config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	for _, in := range []string{
		"radius: -1",
		"workers: 0",
		"strategy: dfs",
		"input: ''",
	} {
		_, err := config.Decode(strings.NewReader(in))
		require.ErrorIs(t, err, config.ErrInvalidConfig, in)
	}

	_, err := config.Decode(strings.NewReader("radious: 3"))
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kcover.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: g.yaml\nassign: true\n"), 0o600))

	cfg, err := config.Read(path)
	require.NoError(t, err)
	require.Equal(t, "g.yaml", cfg.Input)
	require.True(t, cfg.Assign)
	require.Equal(t, config.DefaultRadius, cfg.Radius)

	_, err = config.Read(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
