package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"abalone/game"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty document yields variant A", func(t *testing.T) {
		c, err := Parse([]byte(""))
		require.NoError(t, err)
		require.Equal(t, VariantA(), c)
	})

	t.Run("explicit fields override defaults", func(t *testing.T) {
		c, err := Parse([]byte(`
algorithm: minimax
depth: 0
ordering: false
evaluator: weighted
weights:
  material: 5
  center: 0.5
duration: 250ms
node_limit: 1000
`))
		require.NoError(t, err)
		require.Equal(t, Minimax, c.Algorithm)
		require.Equal(t, 0, *c.Depth, "An explicit zero depth should be kept")
		require.False(t, *c.Ordering)
		require.Equal(t, game.Weights{Material: 5, Center: 0.5}, *c.Weights)
		require.Equal(t, 250*time.Millisecond, c.Duration)
		require.Equal(t, 1000, c.NodeLimit)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := Parse([]byte("algorithm: mcts"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unknown evaluator", func(t *testing.T) {
		_, err := Parse([]byte("evaluator: neural"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects negative depth", func(t *testing.T) {
		_, err := Parse([]byte("depth: -1"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("depth: [1"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evaluator: mobility\ndepth: 3\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Mobility, c.Evaluator)
	require.Equal(t, 3, *c.Depth)
	require.Equal(t, AlphaBeta, c.Algorithm, "Unset fields should fall back to defaults")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestVariants(t *testing.T) {
	require.NoError(t, VariantA().Validate())
	require.NoError(t, VariantB().Validate())
	require.Equal(t, 3, *VariantB().Depth)
	require.False(t, *VariantB().Ordering)
}
