// Command gaussterm renders an animated background in a truecolor terminal.
//
// Each character cell shows two pixels stacked vertically with the upper
// half block. The render size follows the terminal. Any key quits.
package main

import (
	"flag"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gaussbg"
	"github.com/gogpu/gaussbg/internal/config"
	"github.com/gogpu/gaussbg/surface"
)

const upperHalf = '▀'

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML configuration file")
		envPath = flag.String("env", ".env", "dotenv file with GAUSSBG_ overrides")
		logPath = flag.String("log", "", "write logs to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("open log", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		gaussbg.SetLogger(slog.New(slog.NewTextHandler(f, nil)))
	}

	if err := run(*cfgPath, *envPath); err != nil {
		slog.Error("gaussterm failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, envPath string) error {
	file, err := config.Resolve(cfgPath, envPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	cfg := file.Config
	cfg.RenderWidth, cfg.RenderHeight = cols, rows*2

	s, err := surface.New(file.Surface, cfg.RenderWidth, cfg.RenderHeight)
	if err != nil {
		return err
	}
	defer s.Close()

	frames := gaussbg.NewFrameScheduler()
	bg, err := gaussbg.NewBackground(s, file.Layers, cfg, gaussbg.WithScheduler(frames))
	if err != nil {
		return err
	}
	defer bg.Close()
	bg.Play()

	done := make(chan struct{})
	defer close(done)
	events := forwardEvents(screen, done)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				cols, rows := ev.Size()
				cfg.RenderWidth, cfg.RenderHeight = cols, rows*2
				if err := bg.UpdateConfig(cfg); err != nil {
					return err
				}
				screen.Sync()
			}
		case <-ticker.C:
			if frames.RunPending() > 0 {
				paint(screen, s.Snapshot())
				screen.Show()
			}
		}
	}
}

// forwardEvents polls screen on its own goroutine until the screen is
// finalized or done is closed.
func forwardEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// paint draws img onto screen, two pixel rows per cell row.
func paint(screen tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	cols, rows := screen.Size()
	for cy := range min(rows, (b.Dy()+1)/2) {
		for cx := range min(cols, b.Dx()) {
			top, bottom := cellColors(img, b.Min.X+cx, b.Min.Y+2*cy)
			screen.SetContent(cx, cy, upperHalf, nil,
				tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

// cellColors returns the colors of the pixel at (x, y) and the one below
// it. Premultiplied values are the colors composited over black. A missing
// lower row is black.
func cellColors(img *image.RGBA, x, y int) (top, bottom tcell.Color) {
	rgb := func(x, y int) tcell.Color {
		if !(image.Point{x, y}.In(img.Bounds())) {
			return tcell.NewRGBColor(0, 0, 0)
		}
		c := img.RGBAAt(x, y)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return rgb(x, y), rgb(x, y+1)
}
