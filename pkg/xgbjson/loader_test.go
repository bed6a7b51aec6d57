package xgbjson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
	"github.com/vareth-ml/xgbtree/pkg/xgbjson"
)

func stumpJSON() []byte {
	return []byte(`{
		"version": [1, 0, 0],
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_class": "1", "num_feature": "3"},
			"gradient_booster": {
				"name": "gbtree",
				"model": {
					"gbtree_model_param": {"num_trees": "1"},
					"tree_info": [0],
					"trees": [{
						"id": 0,
						"tree_param": {"num_nodes": "1", "num_feature": "3", "size_leaf_vector": "0"},
						"loss_changes": [0.0],
						"sum_hessian": [0.0],
						"base_weights": [0.0],
						"leaf_child_counts": [0],
						"left_children": [-1],
						"right_children": [-1],
						"parents": [-1],
						"split_indices": [0],
						"split_conditions": [0.7],
						"default_left": [false],
						"categories": [],
						"split_type": [0]
					}]
				}
			},
			"objective": {"name": "reg:squarederror"},
			"attributes": {}
		}
	}`)
}

func TestLoadBytes_SingleTreeStump(t *testing.T) {
	t.Parallel()

	model, err := xgbjson.LoadBytes(stumpJSON(), xgbjson.LoadOptions{})
	require.NoError(t, err)
	require.Len(t, model.Trees, 1)

	tree := model.Trees[0]
	require.Len(t, tree.Nodes, 1)
	assert.True(t, tree.Nodes[0].IsLeaf)
	assert.InDelta(t, 0.7, tree.Nodes[0].LeafValue, 1e-6)

	assert.Equal(t, int32(1), model.NumOutputGroup)
	assert.Equal(t, int32(3), model.NumFeature)
	assert.False(t, model.RandomForestFlag)
	assert.Equal(t, treemodel.TransformIdentity, model.PredictionTransform)

	want := treemodel.MarginTransform(0.5)
	assert.InDelta(t, want, model.GlobalBias, 1e-6)
	assert.False(t, math.IsInf(float64(model.GlobalBias), 0))
}

func TestLoadBytes_DepthOneTree(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"version": [1, 0, 0],
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_class": "1", "num_feature": "3"},
			"gradient_booster": {
				"name": "gbtree",
				"model": {
					"gbtree_model_param": {"num_trees": "1"},
					"tree_info": [0],
					"trees": [{
						"id": 0,
						"tree_param": {"num_nodes": "3"},
						"loss_changes": [0.9, 0.0, 0.0],
						"sum_hessian": [10.0, 4.0, 6.0],
						"base_weights": [0.0, 0.0, 0.0],
						"leaf_child_counts": [0, 0, 0],
						"left_children": [1, -1, -1],
						"right_children": [2, -1, -1],
						"parents": [-1, 0, 0],
						"split_indices": [2, 0, 0],
						"split_conditions": [1.5, 0.1, 0.2],
						"default_left": [true, false, false],
						"categories": [],
						"split_type": [0, 0, 0]
					}]
				}
			},
			"objective": {"name": "reg:squarederror"},
			"attributes": {}
		}
	}`)

	model, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.NoError(t, err)
	require.Len(t, model.Trees, 1)

	tree := model.Trees[0]
	require.Len(t, tree.Nodes, 3)

	root := tree.Nodes[0]
	assert.False(t, root.IsLeaf)
	assert.Equal(t, int32(2), root.SplitFeature)
	assert.InDelta(t, 1.5, root.SplitThreshold, 1e-6)
	assert.True(t, root.DefaultLeft)
	assert.InDelta(t, 0.9, root.Gain, 1e-6)
	assert.InDelta(t, 10.0, root.SumHess, 1e-9)

	left := tree.Nodes[root.Left]
	assert.True(t, left.IsLeaf)
	assert.InDelta(t, 0.1, left.LeafValue, 1e-6)
	assert.InDelta(t, 4.0, left.SumHess, 1e-9)

	right := tree.Nodes[root.Right]
	assert.True(t, right.IsLeaf)
	assert.InDelta(t, 0.2, right.LeafValue, 1e-6)
	assert.InDelta(t, 6.0, right.SumHess, 1e-9)
}

func TestLoadBytes_LegacyVersionSkipsMarginTransform(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"version": [0, 90, 0],
		"learner": {
			"learner_model_param": {"base_score": "0.3", "num_class": "1", "num_feature": "1"},
			"gradient_booster": {
				"name": "gbtree",
				"model": {
					"gbtree_model_param": {},
					"tree_info": [],
					"trees": []
				}
			},
			"objective": {"name": "reg:squarederror"},
			"attributes": {}
		}
	}`)

	model, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, model.GlobalBias, 1e-6)
}

func TestLoadBytes_UnsupportedBoosterFails(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"version": [1, 0, 0],
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_class": "1", "num_feature": "1"},
			"gradient_booster": {"name": "gblinear", "model": {}},
			"objective": {"name": "reg:squarederror"},
			"attributes": {}
		}
	}`)

	_, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, xgbjson.ErrUnsupportedBooster)
}

func TestLoadBytes_ArrayLengthMismatchFails(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"version": [1, 0, 0],
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_class": "1", "num_feature": "1"},
			"gradient_booster": {
				"name": "gbtree",
				"model": {
					"gbtree_model_param": {},
					"tree_info": [0],
					"trees": [{
						"id": 0,
						"tree_param": {"num_nodes": "2"},
						"loss_changes": [0.0, 0.0],
						"sum_hessian": [0.0, 0.0, 0.0],
						"base_weights": [0.0, 0.0],
						"leaf_child_counts": [0, 0],
						"left_children": [-1, -1],
						"right_children": [-1, -1],
						"parents": [-1, 0],
						"split_indices": [0, 0],
						"split_conditions": [0.1, 0.2],
						"default_left": [false, false]
					}]
				}
			},
			"objective": {"name": "reg:squarederror"},
			"attributes": {}
		}
	}`)

	_, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, xgbjson.ErrArrayLengthMismatch)
}

func TestLoadBytes_MissingVersionFails(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_class": "1", "num_feature": "1"},
			"gradient_booster": {"name": "gbtree", "model": {"gbtree_model_param": {}, "tree_info": [], "trees": []}},
			"objective": {"name": "reg:squarederror"},
			"attributes": {}
		}
	}`)

	_, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, xgbjson.ErrTopLevelMemberCount)
}

func TestLoadBytes_IsIdempotent(t *testing.T) {
	t.Parallel()

	doc := stumpJSON()

	first, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.NoError(t, err)

	second, err := xgbjson.LoadBytes(doc, xgbjson.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
