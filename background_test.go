package gaussbg

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/gaussbg/surface"
)

func newTestBackground(t *testing.T, specs []LayerSpec, cfg Config, opts ...Option) (*Background, *surface.ImageSurface) {
	t.Helper()
	s := surface.NewImageSurface(cfg.RenderWidth, cfg.RenderHeight)
	t.Cleanup(func() { s.Close() })

	opts = append([]Option{WithSeed(1, 2), WithScheduler(NewFrameScheduler())}, opts...)
	b, err := NewBackground(s, specs, cfg, opts...)
	if err != nil {
		t.Fatalf("NewBackground() error = %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b, s
}

func TestNewBackgroundErrors(t *testing.T) {
	spec := []LayerSpec{{Orbs: 1, Radius: 2, Color: "#000"}}

	if _, err := NewBackground(nil, spec, DefaultConfig()); !errors.Is(err, ErrNoSurface) {
		t.Errorf("nil surface error = %v, want ErrNoSurface", err)
	}

	s := surface.NewImageSurface(10, 10)
	defer s.Close()

	cfg := DefaultConfig()
	cfg.FPSCap = 0
	if _, err := NewBackground(s, spec, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero fps error = %v, want ErrInvalidConfig", err)
	}

	cfg = DefaultConfig()
	cfg.BlurMethod = "gaussian"
	if _, err := NewBackground(s, spec, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown method error = %v, want ErrInvalidConfig", err)
	}

	bad := []LayerSpec{{Orbs: 1, Radius: 2, Color: "nope"}}
	if _, err := NewBackground(s, bad, DefaultConfig()); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("bad color error = %v, want ErrInvalidColor", err)
	}
}

func TestNewBackgroundResizesSurface(t *testing.T) {
	s := surface.NewImageSurface(10, 10)
	defer s.Close()

	b, err := NewBackground(s, nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if s.Width() != 320 || s.Height() != 130 {
		t.Errorf("surface size = %dx%d, want 320x130", s.Width(), s.Height())
	}
}

// TestStaticOrbFramesIdentical renders a single motionless hole and checks
// that every frame is the same.
func TestStaticOrbFramesIdentical(t *testing.T) {
	specs := []LayerSpec{{Orbs: 1, Radius: 5, MaxVelocity: 0, Color: "#000000ff"}}
	cfg := noBlurConfig()
	cfg.ClearFrames = true
	b, s := newTestBackground(t, specs, cfg)

	orb := b.Layers()[0].Orbs[0]

	if err := b.Render(); err != nil {
		t.Fatal(err)
	}
	first := s.Snapshot()
	for i := 0; i < 5; i++ {
		if err := b.Render(); err != nil {
			t.Fatal(err)
		}
		if !samePixels(first, s.Snapshot()) {
			t.Fatalf("frame %d differs from the first frame", i+2)
		}
	}

	if got := b.Layers()[0].Orbs[0]; got.X != orb.X || got.Y != orb.Y {
		t.Errorf("orb moved from (%v, %v) to (%v, %v)", orb.X, orb.Y, got.X, got.Y)
	}
	if a := first.RGBAAt(int(orb.X), int(orb.Y)).A; a == 255 {
		t.Errorf("pixel under the orb is opaque, want a hole")
	}

	// A pixel at least 8px away from the hole is the opaque sheet.
	fx, fy := 2, 2
	if orb.X < 50 {
		fx = 97
	}
	if orb.Y < 50 {
		fy = 97
	}
	if a := first.RGBAAt(fx, fy).A; a != 255 {
		t.Errorf("sheet alpha at (%d,%d) = %d, want 255", fx, fy, a)
	}
}

// TestTranslucentFramesAccumulate checks that a frame is composited over
// the previous one unless ClearFrames is set.
func TestTranslucentFramesAccumulate(t *testing.T) {
	specs := []LayerSpec{{Color: "#ff000080"}}

	tests := []struct {
		name  string
		clear bool
		want  []uint8 // alpha after each frame
	}{
		{"accumulate", false, []uint8{128, 192, 224}},
		{"clear", true, []uint8{128, 128, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := noBlurConfig()
			cfg.ClearFrames = tt.clear
			b, s := newTestBackground(t, specs, cfg)

			for i, want := range tt.want {
				if err := b.Render(); err != nil {
					t.Fatal(err)
				}
				got := s.Image().RGBAAt(40, 40)
				if diff := int(got.A) - int(want); diff < -2 || diff > 2 {
					t.Errorf("frame %d alpha = %d, want %d", i+1, got.A, want)
				}
				if got.R != got.A || got.G != 0 || got.B != 0 {
					t.Errorf("frame %d pixel = %v, want premultiplied red", i+1, got)
				}
			}
		})
	}
}

// TestHoleShowsPreviousFrame moves an orb over an opaque sheet: the hole's
// old position is covered again while the new one shows the old frame.
func TestHoleShowsPreviousFrame(t *testing.T) {
	specs := []LayerSpec{{Orbs: 1, Radius: 6, Color: "#0000ff"}}
	b, s := newTestBackground(t, specs, noBlurConfig())

	l := b.Layers()[0]
	l.Orbs[0].X, l.Orbs[0].Y, l.Orbs[0].VX, l.Orbs[0].VY = 20, 50, 0, 0
	if err := b.Render(); err != nil {
		t.Fatal(err)
	}
	if a := s.Image().RGBAAt(20, 50).A; a != 0 {
		t.Fatalf("first frame hole alpha = %d, want 0", a)
	}

	l.Orbs[0].X = 70
	if err := b.Render(); err != nil {
		t.Fatal(err)
	}
	if got := s.Image().RGBAAt(20, 50); got.B != 255 || got.A != 255 {
		t.Errorf("old hole = %v, want the sheet", got)
	}
	if got := s.Image().RGBAAt(70, 50); got.B != 255 || got.A != 255 {
		t.Errorf("new hole = %v, want the previous frame's sheet", got)
	}
}

func TestLayerOrder(t *testing.T) {
	// The first layer is composited last and ends up on top.
	specs := []LayerSpec{
		{Orbs: 0, Color: "#ff0000"},
		{Orbs: 0, Color: "#0000ff"},
	}
	b, s := newTestBackground(t, specs, noBlurConfig())
	if err := b.Render(); err != nil {
		t.Fatal(err)
	}
	if got := s.Image().RGBAAt(10, 10); got.R != 255 || got.B != 0 {
		t.Errorf("pixel = %v, want the first layer (red) on top", got)
	}
}

func TestTickGating(t *testing.T) {
	clock := newFakeClock()
	specs := []LayerSpec{{Orbs: 2, Radius: 4, MaxVelocity: 1, Color: "#000"}}
	b, _ := newTestBackground(t, specs, noBlurConfig(), WithClock(clock))

	for _, tt := range []struct {
		ms   int
		want bool
	}{{0, false}, {49, false}, {101, true}, {120, false}, {151, true}} {
		ran, err := b.Tick(at(tt.ms))
		if err != nil {
			t.Fatal(err)
		}
		if ran != tt.want {
			t.Errorf("Tick(%d) = %v, want %v", tt.ms, ran, tt.want)
		}
	}
	if got := b.Stats().Frames; got != 2 {
		t.Errorf("Frames = %d, want 2", got)
	}
}

func TestPlayPauseWithFrameScheduler(t *testing.T) {
	clock := newFakeClock()
	frames := NewFrameScheduler()
	specs := []LayerSpec{{Orbs: 1, Radius: 4, MaxVelocity: 1, Color: "#000"}}
	b, _ := newTestBackground(t, specs, noBlurConfig(), WithClock(clock), WithScheduler(frames))

	b.Play()
	b.Play() // no-op
	if !b.Playing() {
		t.Fatal("Playing() = false after Play")
	}
	if frames.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", frames.Pending())
	}

	for i := 0; i < 4; i++ {
		clock.Advance(60 * time.Millisecond)
		frames.RunPending()
	}
	if got := b.Stats().Frames; got != 4 {
		t.Errorf("Frames = %d, want 4", got)
	}

	// Callbacks within one timestep are rejected but keep the loop alive.
	clock.Advance(10 * time.Millisecond)
	frames.RunPending()
	if got := b.Stats().Frames; got != 4 {
		t.Errorf("Frames = %d after a short callback, want 4", got)
	}
	if frames.Pending() != 1 {
		t.Errorf("Pending() = %d, want the loop rescheduled", frames.Pending())
	}

	b.Pause()
	b.Pause() // no-op
	if b.Playing() {
		t.Error("Playing() = true after Pause")
	}
	if frames.Pending() != 0 {
		t.Errorf("Pending() = %d after Pause, want 0", frames.Pending())
	}
}

func TestPauseInvalidatesRunningCallback(t *testing.T) {
	clock := newFakeClock()
	frames := NewFrameScheduler()
	b, _ := newTestBackground(t, nil, noBlurConfig(), WithClock(clock), WithScheduler(frames))

	b.Play()
	// Capture the queued callback, then pause and restart: the old
	// generation must not render.
	b.mu.Lock()
	stale := b.gen
	b.mu.Unlock()
	b.Pause()
	b.Play()

	clock.Advance(time.Second)
	b.loop(stale)
	if got := b.Stats().Frames; got != 0 {
		t.Errorf("stale callback rendered %d frames", got)
	}
	frames.RunPending()
	if got := b.Stats().Frames; got != 1 {
		t.Errorf("Frames = %d, want 1", got)
	}
}

func TestPlayWithoutAnimationRendersOnce(t *testing.T) {
	frames := NewFrameScheduler()
	cfg := noBlurConfig()
	cfg.Animation = false
	b, _ := newTestBackground(t, nil, cfg, WithScheduler(frames))

	b.Play()
	frames.RunPending()
	frames.RunPending()

	if got := b.Stats().Frames; got != 1 {
		t.Errorf("Frames = %d, want 1", got)
	}
	if frames.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", frames.Pending())
	}
}

func TestUpdateConfigRestartsLoop(t *testing.T) {
	frames := NewFrameScheduler()
	cfg := noBlurConfig()
	cfg.Animation = false
	b, _ := newTestBackground(t, nil, cfg, WithScheduler(frames))

	b.Play()
	frames.RunPending()

	cfg.Animation = true
	if err := b.UpdateConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if frames.Pending() != 1 {
		t.Errorf("Pending() = %d after enabling animation, want 1", frames.Pending())
	}
}

func TestPixelAccessError(t *testing.T) {
	s := taintedSurface{surface.NewImageSurface(20, 20)}
	defer s.Close()

	cfg := DefaultConfig()
	cfg.RenderWidth, cfg.RenderHeight = 20, 20
	cfg.BlurRadius = 3

	var handled []error
	frames := NewFrameScheduler()
	b, err := NewBackground(s, []LayerSpec{{Orbs: 1, Radius: 3, Color: "#fff"}}, cfg,
		WithScheduler(frames),
		WithErrorHandler(func(err error) { handled = append(handled, err) }),
		WithClock(newFakeClock()))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	err = b.Render()
	var pae *PixelAccessError
	if !errors.As(err, &pae) {
		t.Fatalf("Render() error = %v, want *PixelAccessError", err)
	}
	if pae.Op != "read" || !errors.Is(err, errTainted) {
		t.Errorf("PixelAccessError = %+v", pae)
	}

	cfg.Animation = false
	if err := b.UpdateConfig(cfg); err != nil {
		t.Fatal(err)
	}
	b.Play()
	frames.RunPending()
	if len(handled) != 1 || !errors.As(handled[0], &pae) {
		t.Errorf("error handler received %v, want one PixelAccessError", handled)
	}
}

func TestBlurSoftensEdges(t *testing.T) {
	cfg := noBlurConfig()
	cfg.Blur = true
	cfg.BlurMethod = StackBoxBlur
	cfg.BlurRadius = 4

	specs := []LayerSpec{{Orbs: 1, Radius: 10, Color: "#ff0000"}}
	b, s := newTestBackground(t, specs, cfg)
	l := b.Layers()[0]
	l.Orbs[0].X, l.Orbs[0].Y = 50, 50

	if err := b.Render(); err != nil {
		t.Fatal(err)
	}

	edge := s.Image().RGBAAt(61, 50)
	if edge.R == 0 || edge.R == 255 {
		t.Errorf("pixel next to the hole R = %d, want a blurred value", edge.R)
	}
	if far := s.Image().RGBAAt(5, 5); far.R != 255 {
		t.Errorf("far pixel R = %d, want 255", far.R)
	}
}

func TestUniformFrameUnchangedByBlur(t *testing.T) {
	for _, m := range []BlurMethod{StackBlur, FastBlur, IntegralBlur, StackBoxBlur} {
		cfg := noBlurConfig()
		cfg.Blur = true
		cfg.BlurMethod = m
		cfg.BlurRadius = 6
		cfg.BlurIterations = 3

		b, s := newTestBackground(t, []LayerSpec{{Color: "#336699"}}, cfg)
		if err := b.Render(); err != nil {
			t.Fatal(err)
		}
		img := s.Image()
		want := img.RGBAAt(0, 0)
		for y := 0; y < 100; y += 7 {
			for x := 0; x < 100; x += 7 {
				if got := img.RGBAAt(x, y); got != want {
					t.Fatalf("%s: pixel (%d,%d) = %v, want %v", m, x, y, got, want)
				}
			}
		}
	}
}

func TestUpdateLayers(t *testing.T) {
	b, _ := newTestBackground(t, []LayerSpec{{Orbs: 2, Radius: 3, Color: "#000"}}, noBlurConfig())

	specs := []LayerSpec{
		{Orbs: 3, Radius: 3, Color: "#111"},
		{Orbs: 1, Radius: 3, Color: "#222"},
	}
	if err := b.UpdateLayers(specs); err != nil {
		t.Fatal(err)
	}
	specs[0].Orbs = 99 // the background keeps its own copy

	if err := b.RefreshLayers(); err != nil {
		t.Fatal(err)
	}
	layers := b.Layers()
	if len(layers) != 2 || len(layers[0].Orbs) != 3 || len(layers[1].Orbs) != 1 {
		t.Fatalf("layers after refresh = %d", len(layers))
	}

	err := b.UpdateLayers([]LayerSpec{{Orbs: 1, Color: "bogus"}})
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("UpdateLayers(bad) error = %v, want ErrInvalidColor", err)
	}
	if got := len(b.Layers()); got != 2 {
		t.Errorf("failed update replaced the layers: %d", got)
	}
}

func TestUpdateConfigResizes(t *testing.T) {
	specs := []LayerSpec{{Orbs: 4, Radius: 3, Color: "#000", Columns: 2}}
	b, s := newTestBackground(t, specs, noBlurConfig())

	cfg := noBlurConfig()
	cfg.RenderWidth, cfg.RenderHeight = 60, 20
	if err := b.UpdateConfig(cfg); err != nil {
		t.Fatal(err)
	}

	if s.Width() != 60 || s.Height() != 20 {
		t.Errorf("surface = %dx%d, want 60x20", s.Width(), s.Height())
	}
	orbs := b.Layers()[0].Orbs
	if orbs[1].Bounds.MinX != 30 || orbs[1].Bounds.MaxX != 60 || orbs[1].Bounds.MaxY != 20 {
		t.Errorf("orb bounds after resize = %+v", orbs[1].Bounds)
	}
	if len(orbs) != 4 {
		t.Errorf("orbs = %d, want 4 from the kept specs", len(orbs))
	}

	cfg.FPSCap = -1
	if err := b.UpdateConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("UpdateConfig(bad) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNonPositiveSizeIsNoop(t *testing.T) {
	s := surface.NewImageSurface(16, 8)
	defer s.Close()

	cfg := noBlurConfig()
	cfg.RenderWidth = 0
	b, err := NewBackground(s, []LayerSpec{{Orbs: 3, Color: "#000"}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if len(b.Layers()) != 0 {
		t.Errorf("layers = %d, want none", len(b.Layers()))
	}
	if s.Width() != 16 || s.Height() != 8 {
		t.Errorf("surface resized to %dx%d", s.Width(), s.Height())
	}
	if err := b.Render(); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}

func TestSeedReproducible(t *testing.T) {
	specs := []LayerSpec{{Orbs: 5, Radius: 3, MaxVelocity: 2, Color: "#000"}, {Orbs: 2, Color: "#fff"}}
	a, _ := newTestBackground(t, specs, noBlurConfig(), WithSeed(5, 6))
	b, _ := newTestBackground(t, specs, noBlurConfig(), WithSeed(5, 6))

	for i := range specs {
		la, lb := a.Layers()[i], b.Layers()[i]
		for j := range la.Orbs {
			if la.Orbs[j] != lb.Orbs[j] {
				t.Errorf("layer %d orb %d differs", i, j)
			}
		}
	}
	if a.ID() == b.ID() {
		t.Error("instances share an id")
	}
}

func TestBackgroundLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b, _ := newTestBackground(t, nil, noBlurConfig(), WithLogger(l))

	_ = b.Render()
	out := buf.String()
	if !strings.Contains(out, "background="+b.ID().String()) {
		t.Errorf("log output lacks the instance id: %s", out)
	}
	if !strings.Contains(out, "msg=frame") {
		t.Errorf("log output lacks the frame record: %s", out)
	}
}
