package renderer

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
	"github.com/raygraph/raygraph/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width   int // Output image width in pixels
	Height  int // Output image height in pixels
	Workers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:   400,
		Height:  400,
		Workers: 0,
	}
}

// Renderer walks a scene graph once per pixel and shades the nearest hit
type Renderer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(sc *scene.Scene, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  sc,
		config: config,
		logger: logger,
	}
}

// Render produces one complete frame. On any traversal error the partial
// frame is discarded and only the error is returned.
func (r *Renderer) Render() (*image.RGBA, RenderStats, error) {
	width, height := r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	r.logger.Printf("Rendering %dx%d with %d workers...\n", width, height, workers)
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pool := NewWorkerPool(r, img, workers, numBands(height))
	pool.Start()
	for y := 0; y < height; y += bandRows {
		end := y + bandRows
		if end > height {
			end = height
		}
		pool.Submit(RowTask{YStart: y, YEnd: end})
	}
	pool.Stop()

	hits := 0
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Err != nil && firstErr == nil {
			firstErr = result.Err
		}
		hits += result.Hits
	}
	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	stats := RenderStats{
		TotalPixels: width * height,
		HitPixels:   hits,
		Workers:     workers,
		Elapsed:     time.Since(start),
	}
	r.logger.Printf("Render completed in %v (%d of %d pixels hit)\n",
		stats.Elapsed, stats.HitPixels, stats.TotalPixels)

	return img, stats, nil
}

// renderRows renders rows [y0, y1) into img. Bands are disjoint across
// workers, so the writes never overlap.
func (r *Renderer) renderRows(ctx *RenderContext, img *image.RGBA, y0, y1 int) (int, error) {
	hits := 0
	for y := y0; y < y1; y++ {
		for x := 0; x < r.config.Width; x++ {
			pixel, hit, err := r.renderPixel(ctx, x, y)
			if err != nil {
				return hits, err
			}
			if hit {
				hits++
			}
			img.SetRGBA(x, y, colorToRGBA(pixel))
		}
	}
	return hits, nil
}

// renderPixel walks the scene graph once for pixel (x, y) and returns its
// color, with the scene background standing in when nothing is hit.
func (r *Renderer) renderPixel(ctx *RenderContext, x, y int) (math32.Vector3, bool, error) {
	ctx.Reset(x, y)
	if err := r.visit(ctx, r.scene.Root); err != nil {
		return math32.Vector3{}, false, err
	}
	if ctx.best == nil {
		return r.scene.Background, false, nil
	}
	return Shade(ctx.bestColor, ctx.best, ctx.lights, r.scene.Phong, ctx.eye), true, nil
}

// colorToRGBA converts a color vector to RGBA with clamping
func colorToRGBA(c math32.Vector3) color.RGBA {
	return color.RGBA{
		R: uint8(255 * math32.Clamp(c.X, 0, 1)),
		G: uint8(255 * math32.Clamp(c.Y, 0, 1)),
		B: uint8(255 * math32.Clamp(c.Z, 0, 1)),
		A: 255,
	}
}
