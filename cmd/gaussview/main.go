// Command gaussview shows an animated background in a window.
//
// Space pauses and resumes the animation, D toggles the statistics overlay
// and Escape or Q quits.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gaussbg"
	"github.com/gogpu/gaussbg/internal/config"
	"github.com/gogpu/gaussbg/internal/overlay"
	"github.com/gogpu/gaussbg/surface"
)

type viewer struct {
	bg      *gaussbg.Background
	surface surface.Surface
	frames  *gaussbg.FrameScheduler
	overlay *overlay.Overlay
	debug   bool

	frame *ebiten.Image
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if v.bg.Playing() {
			v.bg.Pause()
		} else {
			v.bg.Play()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		v.debug = !v.debug
	}
	v.frames.RunPending()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	img := v.surface.Snapshot()
	if v.debug {
		v.overlay.Draw(img, v.bg.DebugLines())
	}

	b := img.Bounds()
	if v.frame == nil || v.frame.Bounds().Size() != b.Size() {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	v.frame.WritePixels(img.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(v.frame, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML configuration file")
		envPath = flag.String("env", ".env", "dotenv file with GAUSSBG_ overrides")
		scale   = flag.Int("scale", 3, "window size as a multiple of the render size")
		debug   = flag.Bool("overlay", false, "start with the statistics overlay")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gaussbg.SetLogger(log)

	if err := run(*cfgPath, *envPath, *scale, *debug); err != nil {
		log.Error("gaussview failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, envPath string, scale int, debug bool) error {
	file, err := config.Resolve(cfgPath, envPath)
	if err != nil {
		return err
	}

	s, err := surface.New(file.Surface, file.RenderWidth, file.RenderHeight)
	if err != nil {
		return err
	}
	defer s.Close()

	ov, err := overlay.New(10)
	if err != nil {
		return err
	}
	defer ov.Close()

	frames := gaussbg.NewFrameScheduler()
	bg, err := gaussbg.NewBackground(s, file.Layers, file.Config, gaussbg.WithScheduler(frames))
	if err != nil {
		return err
	}
	defer bg.Close()
	bg.Play()

	scale = max(1, scale)
	ebiten.SetWindowSize(s.Width()*scale, s.Height()*scale)
	ebiten.SetWindowTitle("gaussbg")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	v := &viewer{bg: bg, surface: s, frames: frames, overlay: ov, debug: debug}
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
