// Command viewer opens a desktop window that renders the spinning showcase
// scene continuously.
package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/raygraph/raygraph/pkg/renderer"
	"github.com/raygraph/raygraph/pkg/scene"
	"github.com/raygraph/raygraph/pkg/transform"
)

// quietLogger drops per-frame render logs
type quietLogger struct{}

func (quietLogger) Printf(format string, args ...interface{}) {}

// Game displays frames produced by the render goroutine
type Game struct {
	frames chan *image.RGBA
	latest *image.RGBA
	screen *ebiten.Image
	width  int
	height int
}

func (g *Game) Update() error {
	select {
	case img := <-g.frames:
		g.latest = img
	default:
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.latest == nil {
		return
	}
	if g.screen == nil {
		g.screen = ebiten.NewImage(g.width, g.height)
	}
	g.screen.WritePixels(g.latest.Pix)
	screen.DrawImage(g.screen, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// renderLoop renders frames forever, advancing the spin only after the
// previous frame has been handed off. The channel is unbuffered, so the
// scene never mutates while a frame is in flight.
func renderLoop(sc *scene.Scene, spin *transform.Rotation, config renderer.RenderConfig, frames chan<- *image.RGBA) {
	r := renderer.NewRenderer(sc, config, quietLogger{})
	angle := float32(0)
	for {
		img, _, err := r.Render()
		if err != nil {
			log.Printf("Render failed: %v", err)
			return
		}
		frames <- img

		angle += 0.05
		spin.SetAngle(angle)
	}
}

func main() {
	width := flag.Int("width", 320, "Viewport width in pixels")
	height := flag.Int("height", 240, "Viewport height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.Parse()

	sc, spin := scene.NewSpinningScene()
	config := renderer.RenderConfig{
		Width:   *width,
		Height:  *height,
		Workers: *workers,
	}

	game := &Game{
		frames: make(chan *image.RGBA),
		width:  *width,
		height: *height,
	}
	go renderLoop(sc, spin, config, game.frames)

	ebiten.SetWindowTitle("raygraph viewer")
	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}
