package treemodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

func TestTree_InitReturnsRootZero(t *testing.T) {
	t.Parallel()

	var tree treemodel.Tree
	root := tree.Init()

	assert.Equal(t, int32(0), root)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, int32(-1), tree.LeftChildID(root))
	assert.Equal(t, int32(-1), tree.RightChildID(root))
}

func TestTree_AddChildsWiresParent(t *testing.T) {
	t.Parallel()

	var tree treemodel.Tree
	root := tree.Init()

	left, right := tree.AddChilds(root)

	assert.Equal(t, left, tree.LeftChildID(root))
	assert.Equal(t, right, tree.RightChildID(root))
	assert.NotEqual(t, left, right)
	require.Len(t, tree.Nodes, 3)
}

func TestTree_SetLeafAndSplit(t *testing.T) {
	t.Parallel()

	var tree treemodel.Tree
	root := tree.Init()
	left, right := tree.AddChilds(root)

	tree.SetNumericalSplit(root, 2, 1.5, true, treemodel.OpLT)
	tree.SetGain(root, 0.9)
	tree.SetSumHess(root, 10)

	tree.SetLeaf(left, 0.1)
	tree.SetSumHess(left, 4)

	tree.SetLeaf(right, 0.2)
	tree.SetSumHess(right, 6)

	assert.False(t, tree.Nodes[root].IsLeaf)
	assert.Equal(t, int32(2), tree.Nodes[root].SplitFeature)
	assert.InDelta(t, 1.5, tree.Nodes[root].SplitThreshold, 1e-9)
	assert.True(t, tree.Nodes[root].DefaultLeft)
	assert.InDelta(t, 0.9, tree.Nodes[root].Gain, 1e-6)
	assert.InDelta(t, 10.0, tree.Nodes[root].SumHess, 1e-9)

	assert.True(t, tree.Nodes[left].IsLeaf)
	assert.InDelta(t, 0.1, tree.Nodes[left].LeafValue, 1e-6)

	assert.True(t, tree.Nodes[right].IsLeaf)
	assert.InDelta(t, 0.2, tree.Nodes[right].LeafValue, 1e-6)
}
