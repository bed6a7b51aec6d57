package checkpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vareth-ml/xgbtree/internal/checkpoint"
	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

func TestCache_StoreThenLookup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := checkpoint.New(dir)

	model := &treemodel.Model{
		NumOutputGroup:      1,
		NumFeature:          3,
		PredictionTransform: treemodel.TransformIdentity,
		Trees: []treemodel.Tree{
			{Nodes: []treemodel.Node{{IsLeaf: true, LeafValue: 0.7, Left: -1, Right: -1}}},
		},
	}

	key := checkpoint.Key([]byte(`{"example":"doc"}`))

	require.NoError(t, c.Store(key, model))

	got, ok := c.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, model, got)
}

func TestCache_LookupMissReturnsFalse(t *testing.T) {
	t.Parallel()

	c := checkpoint.New(t.TempDir())

	_, ok := c.Lookup(checkpoint.Key([]byte("anything")))
	assert.False(t, ok)
}

func TestKey_IsStableAndContentAddressed(t *testing.T) {
	t.Parallel()

	a := checkpoint.Key([]byte(`{"a":1}`))
	b := checkpoint.Key([]byte(`{"a":1}`))
	c := checkpoint.Key([]byte(`{"a":2}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
