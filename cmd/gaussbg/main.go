// Command gaussbg renders an animated background to a sequence of PNG files.
//
// Frames are produced on a simulated clock advancing slightly faster than
// the configured FPS cap, so every tick is accepted and the output is
// independent of the machine's speed.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gaussbg"
	"github.com/gogpu/gaussbg/internal/config"
	"github.com/gogpu/gaussbg/internal/overlay"
	"github.com/gogpu/gaussbg/surface"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML configuration file")
		envPath = flag.String("env", ".env", "dotenv file with GAUSSBG_ overrides")
		frames  = flag.Int("frames", 60, "number of frames to render")
		outDir  = flag.String("out", "frames", "output directory")
		scale   = flag.Int("scale", 1, "integer upscale factor")
		width   = flag.Int("width", 0, "output width, overrides -scale")
		height  = flag.Int("height", 0, "output height, overrides -scale")
		debug   = flag.Bool("overlay", false, "draw the statistics overlay")
		backend = flag.String("surface", "", "surface backend, overrides the configuration")
		seed    = flag.Uint64("seed", 0, "random seed, 0 for a random layout")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gaussbg.SetLogger(log)

	r := renderer{
		frames:  *frames,
		outDir:  *outDir,
		scale:   *scale,
		width:   *width,
		height:  *height,
		overlay: *debug,
		backend: *backend,
		seed:    *seed,
		log:     log,
	}
	if err := r.run(*cfgPath, *envPath); err != nil {
		log.Error("render failed", "err", err)
		os.Exit(1)
	}
}

type renderer struct {
	frames  int
	outDir  string
	scale   int
	width   int
	height  int
	overlay bool
	backend string
	seed    uint64
	log     *slog.Logger
}

// simClock is advanced by the renderer between ticks.
type simClock struct{ now time.Time }

func (c *simClock) Now() time.Time { return c.now }

func (r *renderer) run(cfgPath, envPath string) error {
	file, err := config.Resolve(cfgPath, envPath)
	if err != nil {
		return err
	}
	cfg := file.Config

	backend := file.Surface
	if r.backend != "" {
		backend = r.backend
	}
	s, err := surface.New(backend, cfg.RenderWidth, cfg.RenderHeight)
	if err != nil {
		return err
	}
	defer s.Close()

	clock := &simClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts := []gaussbg.Option{
		gaussbg.WithClock(clock),
		gaussbg.WithScheduler(gaussbg.NewFrameScheduler()),
	}
	if r.seed != 0 {
		opts = append(opts, gaussbg.WithSeed(r.seed, r.seed^0x9e3779b97f4a7c15))
	}
	bg, err := gaussbg.NewBackground(s, file.Layers, cfg, opts...)
	if err != nil {
		return err
	}
	defer bg.Close()

	var ov *overlay.Overlay
	if r.overlay {
		if ov, err = overlay.New(12 * float64(max(1, r.scale))); err != nil {
			return fmt.Errorf("load overlay font: %w", err)
		}
		defer ov.Close()
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return err
	}

	count := r.frames
	if !cfg.Animation {
		count = 1
	}
	step := frameStep(cfg.FPSCap)
	for i := range count {
		clock.now = clock.now.Add(step)
		if cfg.Animation {
			if ok, err := bg.Tick(clock.now); err != nil {
				return err
			} else if !ok {
				continue
			}
		} else if err := bg.Render(); err != nil {
			return err
		}

		img := r.output(s.Snapshot())
		if ov != nil {
			ov.Draw(img, bg.DebugLines())
		}
		name := filepath.Join(r.outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(name, img); err != nil {
			return err
		}
		r.log.Debug("frame written", "path", name)
	}

	st := bg.Stats()
	r.log.Info("done", "frames", st.Frames, "dir", r.outDir, "elapsed", st.Elapsed)
	return nil
}

// frameStep returns a tick interval the controller always accepts.
func frameStep(fps float64) time.Duration {
	if !(fps > 0) {
		return time.Second
	}
	return time.Duration(float64(time.Second)/fps) + time.Millisecond
}

// output scales the rendered frame to the requested output size.
func (r *renderer) output(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx()*max(1, r.scale), b.Dy()*max(1, r.scale)
	if r.width > 0 && r.height > 0 {
		w, h = r.width, r.height
	}
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
