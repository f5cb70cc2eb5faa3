package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archemap/internal/design"
	"archemap/internal/skeleton"
)

var skeletonFlags struct {
	thresholdsPath string
	outputPath     string
}

var skeletonCmd = &cobra.Command{
	Use:   "skeleton [design.json]",
	Short: "Emit a React component skeleton for a design tree",
	Long: `Skeleton maps the design tree and renders a TSX component skeleton
with imports, a props interface, and slot placeholders.

Usage:
  archemap skeleton design.json -o Card.tsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkeleton,
}

func init() {
	f := skeletonCmd.Flags()
	f.StringVar(&skeletonFlags.thresholdsPath, "thresholds", "", "Path to a thresholds YAML file")
	f.StringVarP(&skeletonFlags.outputPath, "output", "o", "", "Write the skeleton to a file instead of stdout")
}

func runSkeleton(cmd *cobra.Command, args []string) error {
	raw, err := readDesignInput(args)
	if err != nil {
		return err
	}

	root, err := design.Decode(raw)
	if err != nil {
		return err
	}

	mapper, err := newMapper(skeletonFlags.thresholdsPath)
	if err != nil {
		return err
	}
	result, err := mapper.Map(root)
	if err != nil {
		return err
	}
	if result.Schema == nil {
		return fmt.Errorf("no skeleton for archetype %s", result.Archetype)
	}

	sk := skeleton.New().Emit(result)

	if skeletonFlags.outputPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), sk.Code)
		return nil
	}
	if err := os.WriteFile(skeletonFlags.outputPath, []byte(sk.Code), 0600); err != nil {
		return fmt.Errorf("write skeleton: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Skeleton written to: %s\n", skeletonFlags.outputPath)
	return nil
}
