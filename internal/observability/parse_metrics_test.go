package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/vareth-ml/xgbtree/internal/observability"
)

func TestParseMetrics_RecordParse_Success(t *testing.T) {
	t.Parallel()

	mp := sdkmetric.NewMeterProvider()
	pm, err := observability.NewParseMetrics(mp.Meter("test"))
	require.NoError(t, err)

	pm.RecordParse(context.Background(), observability.ParseOutcome{
		Duration:     10 * time.Millisecond,
		TreeCount:    2,
		NodesPerTree: []int{3, 5},
	})
}

func TestParseMetrics_RecordParse_Failure(t *testing.T) {
	t.Parallel()

	mp := sdkmetric.NewMeterProvider()
	pm, err := observability.NewParseMetrics(mp.Meter("test"))
	require.NoError(t, err)

	pm.RecordParse(context.Background(), observability.ParseOutcome{
		Duration:   time.Millisecond,
		Failed:     true,
		FailReason: "unsupported_booster",
	})
}

func TestParseMetrics_NilReceiverIsNoop(t *testing.T) {
	t.Parallel()

	var pm *observability.ParseMetrics
	assert.NotPanics(t, func() {
		pm.RecordParse(context.Background(), observability.ParseOutcome{})
	})
}
