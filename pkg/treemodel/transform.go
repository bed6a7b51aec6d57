package treemodel

import "math"

// Prediction transform names. These select the inverse-link function a
// downstream evaluator applies to raw tree output; the evaluator itself is
// out of scope here, only the selection performed at model-load time is.
const (
	TransformIdentity  = "identity"
	TransformSigmoid   = "sigmoid"
	TransformSoftmax   = "softmax"
	TransformMaxIndex  = "max_index"
	TransformExponent  = "exponential"
)

// objectiveTransforms maps known XGBoost objective names to the transform a
// downstream evaluator should apply. Objectives not listed fall back to
// TransformIdentity.
var objectiveTransforms = map[string]string{
	"binary:logistic":      TransformSigmoid,
	"binary:logitraw":      TransformIdentity,
	"binary:hinge":         TransformIdentity,
	"count:poisson":        TransformExponent,
	"reg:logistic":         TransformSigmoid,
	"reg:squarederror":     TransformIdentity,
	"reg:squaredlogerror":  TransformIdentity,
	"reg:pseudohubererror": TransformIdentity,
	"reg:gamma":            TransformExponent,
	"reg:tweedie":          TransformExponent,
	"rank:pairwise":        TransformIdentity,
	"rank:ndcg":            TransformIdentity,
	"rank:map":             TransformIdentity,
	"multi:softmax":        TransformMaxIndex,
	"multi:softprob":       TransformSoftmax,
}

// SelectPredictionTransform sets m.PredictionTransform from the learner's
// objective name. This is the call site LearnerHandler.EndObject invokes;
// the transform selection logic is a standalone, unexported lookup table so
// the handler stays a pure dispatcher.
func SelectPredictionTransform(m *Model, objective string) {
	transform, ok := objectiveTransforms[objective]
	if !ok {
		transform = TransformIdentity
	}

	m.PredictionTransform = transform
}

// MarginTransform applies the XGBoost >= 1.0 base-score-to-margin mapping:
// base_score is stored as a probability in that range of model versions,
// and downstream evaluators that work in margin (pre-link) space need the
// inverse of the sigmoid applied once at load time. Earlier versions stored
// base_score already in margin space and this transform must not run.
func MarginTransform(baseScore float32) float32 {
	p := float64(baseScore)
	if p <= 0 {
		return float32(math.Inf(-1))
	}

	if p >= 1 {
		return float32(math.Inf(1))
	}

	return float32(math.Log(p / (1 - p)))
}
