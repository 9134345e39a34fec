package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/raygraph/raygraph/pkg/core"
	"github.com/raygraph/raygraph/pkg/renderer"
	"github.com/raygraph/raygraph/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "sphere", "Scene ID to render (see -help for the list)")
	plyPath := flag.String("ply", "", "Render an ASCII PLY mesh file instead of a built-in scene")
	width := flag.Int("width", 400, "Output image width in pixels")
	height := flag.Int("height", 400, "Output image height in pixels")
	fov := flag.Float64("fov", 0, "Horizontal field of view in radians (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Scene Graph Raytracer")
		fmt.Println("Usage: raygraph [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-10s %s\n", info.ID, info.Description)
		}
		return
	}

	fmt.Println("Starting Scene Graph Raytracer...")

	logger := renderer.NewDefaultLogger()
	selectedScene, sceneID, err := createScene(*sceneName, *plyPath, logger)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		return
	}

	if *fov > 0 {
		applyFOV(selectedScene.Root, float32(*fov))
	}

	config := renderer.RenderConfig{
		Width:   *width,
		Height:  *height,
		Workers: *workers,
	}
	img, stats, err := renderer.NewRenderer(selectedScene, config, logger).Render()
	if err != nil {
		fmt.Printf("Render error: %v\n", err)
		return
	}
	fmt.Printf("Coverage: %.1f%% of pixels hit geometry\n", stats.HitRatio()*100)

	filename := outputPath(*output, sceneID, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves the scene to render: a PLY mesh file when given,
// otherwise a built-in scene by ID. It also returns the ID used for the
// output directory.
func createScene(name, plyPath string, logger core.Logger) (*scene.Scene, string, error) {
	if plyPath != "" {
		sc, err := scene.NewPLYScene(plyPath, logger)
		if err != nil {
			return nil, "", err
		}
		base := filepath.Base(plyPath)
		return sc, base[:len(base)-len(filepath.Ext(base))], nil
	}

	sc, err := scene.ByName(name)
	if err != nil {
		return nil, "", err
	}
	return sc, name, nil
}

// applyFOV overrides the field of view of every camera in the tree
func applyFOV(node scene.Node, fov float32) {
	switch n := node.(type) {
	case *scene.GroupNode:
		for _, child := range n.Children {
			applyFOV(child, fov)
		}
	case *scene.CameraNode:
		n.FOV = fov
	}
}

// outputPath picks the output file: the explicit flag when set, otherwise
// a timestamped file under output/<scene>/.
func outputPath(flagValue, sceneID string, now time.Time) string {
	if flagValue != "" {
		return flagValue
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", timestamp))
}
