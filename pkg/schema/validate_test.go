package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vareth-ml/xgbtree/pkg/schema"
)

func TestValidate_ConformingDocumentPasses(t *testing.T) {
	doc := []byte(`{
		"version": [2, 0, 0],
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_feature": "3"},
			"gradient_booster": {"name": "gbtree", "model": {}},
			"objective": {"name": "reg:squarederror"}
		}
	}`)

	require.NoError(t, schema.Validate(doc))
}

func TestValidate_MissingTopLevelMemberFails(t *testing.T) {
	doc := []byte(`{"learner": {}}`)

	err := schema.Validate(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not conform")
}

func TestValidate_WrongFieldTypeFails(t *testing.T) {
	doc := []byte(`{
		"version": "not-an-array",
		"learner": {
			"learner_model_param": {"base_score": "0.5", "num_feature": "3"},
			"gradient_booster": {"name": "gbtree"},
			"objective": {"name": "reg:squarederror"}
		}
	}`)

	err := schema.Validate(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not conform")
}

func TestValidate_MalformedJSONFails(t *testing.T) {
	err := schema.Validate([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}
