package treemodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

func TestSelectPredictionTransform_KnownObjectives(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"binary:logistic": treemodel.TransformSigmoid,
		"binary:logitraw": treemodel.TransformIdentity,
		"count:poisson":   treemodel.TransformExponent,
		"multi:softmax":   treemodel.TransformMaxIndex,
		"multi:softprob":  treemodel.TransformSoftmax,
		"reg:squarederror": treemodel.TransformIdentity,
	}

	for objective, want := range cases {
		m := &treemodel.Model{}
		treemodel.SelectPredictionTransform(m, objective)
		assert.Equal(t, want, m.PredictionTransform, objective)
	}
}

func TestSelectPredictionTransform_UnknownFallsBackToIdentity(t *testing.T) {
	t.Parallel()

	m := &treemodel.Model{}
	treemodel.SelectPredictionTransform(m, "survival:cox")
	assert.Equal(t, treemodel.TransformIdentity, m.PredictionTransform)
}

func TestMarginTransform(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, treemodel.MarginTransform(0.5), 1e-6)

	assert.True(t, math.IsInf(float64(treemodel.MarginTransform(0)), -1))
	assert.True(t, math.IsInf(float64(treemodel.MarginTransform(1)), 1))

	want := math.Log(0.3 / 0.7)
	assert.InDelta(t, want, treemodel.MarginTransform(0.3), 1e-5)
}
