package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vareth-ml/xgbtree/internal/checkpoint"
	"github.com/vareth-ml/xgbtree/internal/observability"
	"github.com/vareth-ml/xgbtree/pkg/schema"
	"github.com/vareth-ml/xgbtree/pkg/treemodel"
	"github.com/vareth-ml/xgbtree/pkg/units"
	"github.com/vareth-ml/xgbtree/pkg/xgbjson"
)

// maxModelFileSize bounds how large a model file inspect will read into
// memory in one shot. XGBoost forests with this many nodes are already well
// past anything a single "inspect" invocation is meant to summarize.
const maxModelFileSize = 512 * units.MiB

type inspectOptions struct {
	noCache bool
}

func newInspectCommand() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <model.json>",
		Short: "Load an XGBoost model and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the checkpoint cache")

	return cmd
}

func runInspect(path string, opts *inspectOptions) error {
	cfg, providers, cache, shutdown, err := bootstrap()
	if err != nil {
		return err
	}
	defer shutdown()

	metrics, err := observability.NewParseMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("create parse metrics: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size() > maxModelFileSize {
		return fmt.Errorf("%s is %s, larger than the %s inspect limit", path,
			humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(maxModelFileSize)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if cfg.Strict {
		if err := schema.Validate(data); err != nil {
			return fmt.Errorf("strict validation: %w", err)
		}
	}

	model, cacheHit, err := loadWithCache(data, cfg.Checkpoint.Enabled && !opts.noCache, cache, providers, metrics)
	if err != nil {
		return err
	}

	printSummary(path, info.Size(), model, cacheHit)

	return nil
}

func loadWithCache(
	data []byte,
	useCache bool,
	cache *checkpoint.Cache,
	providers observability.Providers,
	metrics *observability.ParseMetrics,
) (*treemodel.Model, bool, error) {
	ctx := context.Background()
	start := time.Now()
	key := checkpoint.Key(data)

	if useCache {
		if model, ok := cache.Lookup(key); ok {
			metrics.RecordParse(ctx, observability.ParseOutcome{
				Duration: time.Since(start),
				CacheHit: true,
			})

			return model, true, nil
		}
	}

	model, err := xgbjson.LoadBytes(data, xgbjson.LoadOptions{Logger: providers.Logger})
	if err != nil {
		metrics.RecordParse(ctx, observability.ParseOutcome{
			Duration:   time.Since(start),
			Failed:     true,
			FailReason: classifyFailure(err),
		})

		return nil, false, fmt.Errorf("parse model: %w", err)
	}

	nodesPerTree := make([]int, len(model.Trees))
	for i, t := range model.Trees {
		nodesPerTree[i] = len(t.Nodes)
	}

	metrics.RecordParse(ctx, observability.ParseOutcome{
		Duration:     time.Since(start),
		TreeCount:    len(model.Trees),
		NodesPerTree: nodesPerTree,
	})

	if useCache {
		if storeErr := cache.Store(key, model); storeErr != nil {
			providers.Logger.Warn("xgbtree: failed to store checkpoint", "error", storeErr)
		}
	}

	return model, false, nil
}

func classifyFailure(err error) string {
	switch {
	case err == nil:
		return ""
	default:
		return "parse_error"
	}
}

func printSummary(path string, fileSize int64, model *treemodel.Model, cacheHit bool) {
	bold := color.New(color.Bold)

	bold.Println(path)
	fmt.Printf("size: %s\n", humanize.Bytes(uint64(fileSize)))

	if cacheHit {
		color.Green("loaded from checkpoint cache")
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)

	tbl.AppendHeader(table.Row{"field", "value"})
	tbl.AppendRow(table.Row{"trees", len(model.Trees)})
	tbl.AppendRow(table.Row{"num_feature", model.NumFeature})
	tbl.AppendRow(table.Row{"num_output_group", model.NumOutputGroup})
	tbl.AppendRow(table.Row{"global_bias", model.GlobalBias})
	tbl.AppendRow(table.Row{"prediction_transform", model.PredictionTransform})
	tbl.AppendRow(table.Row{"random_forest", model.RandomForestFlag})
	tbl.AppendRow(table.Row{"total_nodes", totalNodes(model)})

	tbl.Render()
}

func totalNodes(model *treemodel.Model) int {
	total := 0
	for _, t := range model.Trees {
		total += len(t.Nodes)
	}

	return total
}
