package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"archemap/internal/design"
	"archemap/internal/engine"
	"archemap/internal/gateway/model"
	"archemap/internal/resolve"
	"archemap/internal/schema"
)

var classifyFlags struct {
	thresholdsPath string
	outputPath     string
	reasonsOnly    bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify [design.json]",
	Short: "Classify a design tree and map its children into slots",
	Long: `Classify reads a design node tree (JSON), determines the component
archetype, and resolves each child into the archetype's slots.

Usage:
  archemap classify design.json
  cat design.json | archemap classify -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVar(&classifyFlags.thresholdsPath, "thresholds", "", "Path to a thresholds YAML file")
	f.StringVarP(&classifyFlags.outputPath, "output", "o", "", "Write the mapping result to a file instead of stdout")
	f.BoolVar(&classifyFlags.reasonsOnly, "reasons", false, "Print only the archetype verdict and its reasoning")
}

func runClassify(cmd *cobra.Command, args []string) error {
	raw, err := readDesignInput(args)
	if err != nil {
		return err
	}

	root, err := design.Decode(raw)
	if err != nil {
		return err
	}

	mapper, err := newMapper(classifyFlags.thresholdsPath)
	if err != nil {
		return err
	}

	if classifyFlags.reasonsOnly {
		verdict := mapper.Classify(root)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%.0f%%)\n", verdict.Archetype, verdict.Confidence*100)
		for _, r := range verdict.Reasons {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", r)
		}
		return nil
	}

	result, err := mapper.Map(root)
	if err != nil {
		return err
	}
	rec := model.FromResult("", root.Name, result)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return writeOutput(cmd, classifyFlags.outputPath, data)
}

func newMapper(thresholdsPath string) (*engine.Mapper, error) {
	if thresholdsPath == "" {
		return engine.Default(), nil
	}
	t, err := resolve.LoadThresholds(thresholdsPath)
	if err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}
	return engine.New(schema.NewCatalog(), t), nil
}

func readDesignInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read design: %w", err)
	}
	return raw, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Result written to: %s\n", path)
	return nil
}
