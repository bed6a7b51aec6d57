package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vareth-ml/xgbtree/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("xgbtree %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
