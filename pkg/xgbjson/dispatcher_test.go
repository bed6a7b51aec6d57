package xgbjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
	"github.com/vareth-ml/xgbtree/pkg/xgbjson"
)

func TestDispatcher_FailsOnUnexpectedTopLevelScalar(t *testing.T) {
	t.Parallel()

	d := xgbjson.NewDispatcher(&xgbjson.Context{Model: &treemodel.Model{}})

	err := d.Dispatch(xgbjson.EventString("not an object"))
	require.Error(t, err)
	assert.ErrorIs(t, err, xgbjson.ErrUnexpectedEvent)

	// Once failed, the dispatcher returns the same error without doing
	// further work.
	err2 := d.Dispatch(xgbjson.EventStartObject())
	assert.Equal(t, err, err2)
}

func TestDispatcher_ResultTransfersOwnership(t *testing.T) {
	t.Parallel()

	model := &treemodel.Model{NumFeature: 4}
	d := xgbjson.NewDispatcher(&xgbjson.Context{Model: model})

	got := d.Result()
	assert.Same(t, model, got)

	// The context's reference was cleared; a second call returns nil.
	assert.Nil(t, d.Result())
}

func TestDispatcher_EmptyTopLevelObjectFailsMemberCount(t *testing.T) {
	t.Parallel()

	d := xgbjson.NewDispatcher(&xgbjson.Context{Model: &treemodel.Model{}})

	// Opening and immediately closing an object at the root pops the
	// XGBoostModelHandler that OnStartObject installs, which then runs its
	// own EndObject invariant check and fails on member count before any
	// stack-underflow path is reached.
	require.NoError(t, d.Dispatch(xgbjson.EventStartObject()))

	err := d.Dispatch(xgbjson.EventEndObject(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, xgbjson.ErrTopLevelMemberCount)
}
