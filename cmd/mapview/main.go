// Command mapview loads a Valve 220 .map file and displays its geometry in
// a free-fly OpenGL viewer.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/brushkit/valvemap/pkg/mapfile"
	"github.com/brushkit/valvemap/pkg/meshing"
	"github.com/brushkit/valvemap/pkg/render"
)

func init() {
	// GLFW/OpenGL calls must run on the thread that owns the context.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "optional yaml viewer config")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: mapview [-config path.yaml] <map-file>")
	}
	mapPath := flag.Arg(0)

	cfg := render.DefaultConfig()
	if *configPath != "" {
		loaded, err := render.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("mapview: %v", err)
		}
		cfg = loaded
	}

	f, err := os.Open(mapPath)
	if err != nil {
		log.Fatalf("mapview: open %s: %v", mapPath, err)
	}
	defer f.Close()

	m, err := mapfile.FromReader(f)
	if err != nil {
		log.Fatalf("mapview: parse %s: %v", mapPath, err)
	}

	scene, err := render.NewScene(cfg)
	if err != nil {
		log.Fatalf("mapview: %v", err)
	}

	meshCount := 0
	for i, e := range m.Entities {
		if len(e.Brushes) == 0 {
			continue
		}
		mesh, err := meshing.MeshFromEntityConcurrent(e)
		if err != nil {
			log.Printf("mapview: skipping entity %d: %v", i, err)
			continue
		}
		scene.AddMesh(mesh)
		meshCount++
	}
	log.Printf("mapview: loaded %d entities with geometry from %s", meshCount, mapPath)

	scene.Run()
}
