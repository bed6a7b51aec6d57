package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func stringAttr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

const (
	metricModelsTotal       = "xgbtree.parse.models.total"
	metricModelsFailedTotal = "xgbtree.parse.models.failed.total"
	metricTreesTotal        = "xgbtree.parse.trees.total"
	metricNodesPerTree      = "xgbtree.parse.nodes_per_tree"
	metricParseDuration     = "xgbtree.parse.duration.seconds"
	metricCacheHitsTotal    = "xgbtree.checkpoint.hits.total"
	metricCacheMissesTotal  = "xgbtree.checkpoint.misses.total"

	attrReason = "reason"
)

// durationBucketBoundaries spans parse times from the sub-millisecond
// range (small stumps) to multi-second range (hundreds of deep trees).
var durationBucketBoundaries = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30,
}

// ParseMetrics holds the OTel instruments recorded around one model load.
type ParseMetrics struct {
	modelsTotal       metric.Int64Counter
	modelsFailedTotal metric.Int64Counter
	treesTotal        metric.Int64Counter
	nodesPerTree      metric.Int64Histogram
	parseDuration     metric.Float64Histogram
	cacheHits         metric.Int64Counter
	cacheMisses       metric.Int64Counter
}

// ParseOutcome describes one completed load, successful or not, for
// RecordParse to fold into the instruments.
type ParseOutcome struct {
	Duration     time.Duration
	TreeCount    int
	NodesPerTree []int
	Failed       bool
	FailReason   string
	CacheHit     bool
}

// NewParseMetrics creates the parse metric instruments from mt.
func NewParseMetrics(mt metric.Meter) (*ParseMetrics, error) {
	modelsTotal, err := mt.Int64Counter(metricModelsTotal,
		metric.WithDescription("Total models successfully parsed"),
		metric.WithUnit("{model}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricModelsTotal, err)
	}

	modelsFailed, err := mt.Int64Counter(metricModelsFailedTotal,
		metric.WithDescription("Total models that failed to parse"),
		metric.WithUnit("{model}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricModelsFailedTotal, err)
	}

	treesTotal, err := mt.Int64Counter(metricTreesTotal,
		metric.WithDescription("Total trees reshaped across all parses"),
		metric.WithUnit("{tree}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricTreesTotal, err)
	}

	nodesPerTree, err := mt.Int64Histogram(metricNodesPerTree,
		metric.WithDescription("Destination node count per reshaped tree"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricNodesPerTree, err)
	}

	parseDuration, err := mt.Float64Histogram(metricParseDuration,
		metric.WithDescription("Wall-clock duration of one model load"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricParseDuration, err)
	}

	cacheHits, err := mt.Int64Counter(metricCacheHitsTotal,
		metric.WithDescription("Checkpoint cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheHitsTotal, err)
	}

	cacheMisses, err := mt.Int64Counter(metricCacheMissesTotal,
		metric.WithDescription("Checkpoint cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheMissesTotal, err)
	}

	return &ParseMetrics{
		modelsTotal:       modelsTotal,
		modelsFailedTotal: modelsFailed,
		treesTotal:        treesTotal,
		nodesPerTree:      nodesPerTree,
		parseDuration:     parseDuration,
		cacheHits:         cacheHits,
		cacheMisses:       cacheMisses,
	}, nil
}

// RecordParse folds one load's outcome into the instruments. Safe to call
// on a nil receiver (no-op), so callers that skip metrics setup don't need
// to guard every call site.
func (pm *ParseMetrics) RecordParse(ctx context.Context, outcome ParseOutcome) {
	if pm == nil {
		return
	}

	pm.parseDuration.Record(ctx, outcome.Duration.Seconds())

	if outcome.CacheHit {
		pm.cacheHits.Add(ctx, 1)
	} else {
		pm.cacheMisses.Add(ctx, 1)
	}

	if outcome.Failed {
		pm.modelsFailedTotal.Add(ctx, 1, metric.WithAttributes(
			stringAttr(attrReason, outcome.FailReason),
		))

		return
	}

	pm.modelsTotal.Add(ctx, 1)
	pm.treesTotal.Add(ctx, int64(outcome.TreeCount))

	for _, n := range outcome.NodesPerTree {
		pm.nodesPerTree.Record(ctx, int64(n))
	}
}
