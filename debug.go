package gaussbg

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats summarizes the state of a background for debug displays.
type Stats struct {
	Frames     int
	Elapsed    time.Duration // from creation to the last accepted frame
	FPSAverage float64

	FPSCap       float64
	RenderWidth  int
	RenderHeight int
	Layers       int
	Animation    bool

	Blur           bool
	BlurMethod     BlurMethod
	BlurRadius     int
	BlurIterations int
}

// Stats returns the current statistics.
func (b *Background) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats()
}

func (b *Background) stats() Stats {
	elapsed := b.ctrl.Last().Sub(b.ctrl.First())
	var avg float64
	if elapsed > 0 {
		avg = float64(b.frames) / elapsed.Seconds()
	}
	return Stats{
		Frames:         b.frames,
		Elapsed:        elapsed,
		FPSAverage:     avg,
		FPSCap:         b.cfg.FPSCap,
		RenderWidth:    b.cfg.RenderWidth,
		RenderHeight:   b.cfg.RenderHeight,
		Layers:         len(b.layers),
		Animation:      b.cfg.Animation,
		Blur:           b.cfg.Blur,
		BlurMethod:     b.cfg.BlurMethod,
		BlurRadius:     b.cfg.BlurRadius,
		BlurIterations: b.cfg.BlurIterations,
	}
}

// DebugLines returns the statistics formatted one per line.
func (b *Background) DebugLines() []string {
	return b.Stats().Lines()
}

var printer = message.NewPrinter(language.English)

// Lines formats the statistics for an overlay. Rate lines appear only with
// animation and blur lines only with blur.
func (s Stats) Lines() []string {
	var lines []string
	if s.Animation {
		lines = append(lines,
			printer.Sprintf("FPS Average: %d", int(math.Round(s.FPSAverage))),
			printer.Sprintf("FPS Cap: %d", int(math.Round(s.FPSCap))),
		)
	}
	animation := "No"
	if s.Animation {
		animation = "Yes"
	}
	lines = append(lines,
		printer.Sprintf("Render Width: %dpx", s.RenderWidth),
		printer.Sprintf("Render Height: %dpx", s.RenderHeight),
		printer.Sprintf("Layers: %d", s.Layers),
		"Animation: "+animation,
	)
	if s.Blur {
		lines = append(lines,
			"Blur Algorithm: "+string(s.BlurMethod),
			printer.Sprintf("Blur Radius: %d", s.BlurRadius),
			printer.Sprintf("Blur Iterations: %d", s.BlurIterations),
		)
	}
	return lines
}
