package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brushkit/valvemap/pkg/mapfile"
	"github.com/brushkit/valvemap/pkg/meshing"
)

func newOBJCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "obj <map-file>",
		Short: "Export the merged geometry of every entity as a Wavefront OBJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOBJ(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .obj path (default: stdout)")
	return cmd
}

func runOBJ(path, output string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mapfile.FromReader(f)
	if err != nil {
		return fmt.Errorf("obj: parse %s: %w", path, err)
	}

	var meshes []meshing.Mesh
	for _, e := range m.Entities {
		if len(e.Brushes) == 0 {
			continue
		}
		mesh, err := meshing.MeshFromEntity(e)
		if err != nil {
			continue
		}
		meshes = append(meshes, mesh)
	}
	merged := meshing.Merge(meshes...)

	out := os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("obj: create %s: %w", output, err)
		}
		defer file.Close()
		out = file
	}

	return writeOBJ(out, merged)
}

func writeOBJ(f *os.File, mesh meshing.Mesh) error {
	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, p := range mesh.Positions {
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	for _, n := range mesh.Normals {
		if _, err := fmt.Fprintf(w, "vn %f %f %f\n", n[0], n[1], n[2]); err != nil {
			return err
		}
	}
	for _, uv := range mesh.UVs {
		if _, err := fmt.Fprintf(w, "vt %f %f\n", uv[0], uv[1]); err != nil {
			return err
		}
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		if _, err := fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			a, a, a, b, b, b, c, c, c); err != nil {
			return err
		}
	}
	return nil
}
