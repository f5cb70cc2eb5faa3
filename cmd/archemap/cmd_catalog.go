package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"archemap/internal/schema"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the known component archetypes and their slots",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	catalog := schema.NewCatalog()
	for _, a := range catalog.Archetypes() {
		s, ok := catalog.Lookup(a)
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d slots)\n", a, s.SlotCount())
		printSlots(cmd, s.Slots, 1)
	}
	return nil
}

func printSlots(cmd *cobra.Command, slots []schema.Slot, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, slot := range slots {
		marks := make([]string, 0, 2)
		if slot.Required {
			marks = append(marks, "required")
		}
		if slot.AllowsMultiple {
			marks = append(marks, "multiple")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s- %s%s\n", indent, slot.Name, suffix)
		printSlots(cmd, slot.Children, depth+1)
	}
}
