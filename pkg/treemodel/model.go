// Package treemodel is the in-memory tree-ensemble representation that a
// parsed XGBoost model is reshaped into: the parser consumes its node
// builder API ([Tree.AddChilds], [Tree.SetLeaf], [Tree.SetNumericalSplit],
// [Tree.SetGain], [Tree.SetSumHess]) without knowing how nodes are stored.
package treemodel

// Model is an ensemble of decision trees plus the scalar parameters needed
// to turn raw tree output into a prediction.
type Model struct {
	Trees []Tree

	// GlobalBias is added to the sum of every tree's output. Holds the raw
	// base_score until the loader applies the margin transform for
	// XGBoost >= 1.0 models.
	GlobalBias float32

	// NumOutputGroup is the number of output groups (classes, for
	// multiclass objectives; 1 otherwise). At least 1 whenever the loaded
	// document carries num_class; left at 0 when num_class is absent.
	NumOutputGroup int32

	// NumFeature is the number of input features the trees were trained
	// against.
	NumFeature int32

	// RandomForestFlag distinguishes boosted ensembles (false) from random
	// forests (true). Always false for models loaded from XGBoost.
	RandomForestFlag bool

	// PredictionTransform names the inverse-link function predictions
	// should be passed through, selected from the objective name.
	PredictionTransform string
}
