package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brushkit/valvemap/pkg/mapfile"
	"github.com/brushkit/valvemap/pkg/meshing"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <map-file>",
		Short: "Print entity, brush, vertex, and triangle counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func runStats(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("stats: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mapfile.FromReader(f)
	if err != nil {
		return fmt.Errorf("stats: parse %s: %w", path, err)
	}

	totalBrushes, totalVerts, totalTris := 0, 0, 0
	for i, e := range m.Entities {
		totalBrushes += len(e.Brushes)
		if len(e.Brushes) == 0 {
			continue
		}
		mesh, err := meshing.MeshFromEntity(e)
		if err != nil {
			fmt.Printf("entity %d: skipped (%v)\n", i, err)
			continue
		}
		totalVerts += len(mesh.Positions)
		totalTris += len(mesh.Indices) / 3
	}

	fmt.Printf("entities:  %d\n", len(m.Entities))
	fmt.Printf("brushes:   %d\n", totalBrushes)
	fmt.Printf("vertices:  %d\n", totalVerts)
	fmt.Printf("triangles: %d\n", totalTris)
	return nil
}
