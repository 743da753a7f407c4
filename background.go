package gaussbg

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/gaussbg/internal/filter"
	"github.com/gogpu/gaussbg/surface"
)

// Background animates a set of layers on a surface.
//
// Each accepted frame advances every layer and paints it over the previous
// frame, then blurs the result when blur is enabled. Translucent layers
// therefore build up from frame to frame unless ClearFrames is set.
//
// Background is safe for concurrent use. The surface must not be drawn
// to by anyone else while the background runs.
type Background struct {
	mu sync.Mutex

	id      uuid.UUID
	surface surface.Surface
	cfg     Config
	specs   []LayerSpec
	layers  []*Layer
	ctrl    *Controller
	blur    filter.Func

	clock     Clock
	scheduler Scheduler
	rng       *rand.Rand
	log       *slog.Logger
	onError   func(error)

	playing bool
	gen     uint64
	handle  Handle
	frames  int
}

// NewBackground creates a background drawing onto s.
//
// The surface is resized to the render size and layers are generated from
// specs. The frame loop does not start until Play is called.
func NewBackground(s surface.Surface, specs []LayerSpec, cfg Config, opts ...Option) (*Background, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Background{
		id:        uuid.New(),
		surface:   s,
		clock:     o.clock,
		scheduler: o.scheduler,
		rng:       o.rng,
		onError:   o.onError,
	}
	if b.scheduler == nil {
		b.scheduler = NewTimerScheduler(DefaultTimerDelay)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}
	b.log = log.With("background", b.id.String())
	if b.onError == nil {
		b.onError = func(err error) {
			b.log.Warn("frame failed", "err", err)
		}
	}

	b.ctrl = NewController(cfg.FPSCap, cfg.Animation, b.clock.Now())
	if err := b.applyConfig(cfg); err != nil {
		return nil, err
	}
	if err := b.updateLayers(specs); err != nil {
		return nil, err
	}

	b.log.Info("background created",
		"width", cfg.RenderWidth, "height", cfg.RenderHeight, "layers", len(b.layers))
	return b, nil
}

// ID returns the instance id used in log records.
func (b *Background) ID() uuid.UUID {
	return b.id
}

// Surface returns the surface the background draws onto.
func (b *Background) Surface() surface.Surface {
	return b.surface
}

// Config returns the active configuration with blur parameters clamped.
func (b *Background) Config() Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// Layers returns the current layers. The slice is a copy; the layers are
// shared.
func (b *Background) Layers() []*Layer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.layers)
}

// Play starts the frame loop on the scheduler. Calling Play while playing
// is a no-op. With animation disabled a single frame is rendered.
func (b *Background) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.playing {
		return
	}
	b.playing = true
	b.arm()
	b.log.Info("play")
}

// Pause stops the frame loop. Pausing a paused background is a no-op.
func (b *Background) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.playing {
		return
	}
	b.playing = false
	b.disarm()
	b.log.Info("pause")
}

// Playing reports whether the frame loop is started.
func (b *Background) Playing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.playing
}

// arm schedules the next loop callback for a new generation.
// Must be called with mu held.
func (b *Background) arm() {
	b.gen++
	gen := b.gen
	b.handle = b.scheduler.Schedule(func() { b.loop(gen) })
}

// disarm cancels the pending callback and invalidates callbacks already
// running. Must be called with mu held.
func (b *Background) disarm() {
	b.gen++
	if b.handle != 0 {
		b.scheduler.Cancel(b.handle)
		b.handle = 0
	}
}

// loop is the scheduled frame callback. The next frame is scheduled before
// this one runs.
func (b *Background) loop(gen uint64) {
	b.mu.Lock()
	if !b.playing || gen != b.gen {
		b.mu.Unlock()
		return
	}

	if b.cfg.Animation {
		b.handle = b.scheduler.Schedule(func() { b.loop(gen) })
	} else {
		b.handle = 0
	}

	_, err := b.tick(b.clock.Now())
	onError := b.onError
	b.mu.Unlock()

	if err != nil {
		onError(err)
	}
}

// Tick runs a frame if the controller accepts now, and reports whether it
// did. Hosts that drive frames themselves call Tick instead of Play.
func (b *Background) Tick(now time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tick(now)
}

func (b *Background) tick(now time.Time) (bool, error) {
	if !b.ctrl.Ready(now) {
		return false, nil
	}
	return true, b.render()
}

// Render runs a frame immediately, bypassing the rate cap.
func (b *Background) Render() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.render()
}

// render draws one frame. Must be called with mu held.
func (b *Background) render() error {
	if b.cfg.ClearFrames {
		if err := b.surface.Clear(color.Transparent); err != nil {
			return fmt.Errorf("gaussbg: clear surface: %w", err)
		}
	}
	if err := animate(b.surface, b.layers); err != nil {
		return fmt.Errorf("gaussbg: paint layers: %w", err)
	}
	if b.blur != nil {
		if err := blurSurface(b.surface, b.blur, b.cfg.BlurRadius, b.cfg.BlurIterations); err != nil {
			return err
		}
	}

	b.frames++
	b.log.Debug("frame", "n", b.frames, "layers", len(b.layers))
	if b.cfg.Debug {
		b.log.Info("stats", "lines", b.stats().Lines())
	}
	return nil
}

// UpdateLayers replaces every layer with layers generated from specs.
// A copy of specs is kept for RefreshLayers. On error the current layers
// are kept.
func (b *Background) UpdateLayers(specs []LayerSpec) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.updateLayers(specs)
}

// RefreshLayers regenerates the layers from the last accepted specs, for
// instance after a size change.
func (b *Background) RefreshLayers() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.updateLayers(b.specs)
}

func (b *Background) updateLayers(specs []LayerSpec) error {
	var layers []*Layer
	if b.cfg.hasSize() {
		layers = make([]*Layer, len(specs))
		for i := len(specs) - 1; i >= 0; i-- {
			l, err := GenerateLayer(specs[i], b.cfg.RenderWidth, b.cfg.RenderHeight, b.rng)
			if err != nil {
				closeLayers(layers)
				return fmt.Errorf("gaussbg: layer %d: %w", i, err)
			}
			layers[i] = l
		}
	}

	closeLayers(b.layers)
	b.layers = layers
	b.specs = slices.Clone(specs)
	b.log.Info("layers rebuilt", "layers", len(layers))
	return nil
}

func closeLayers(layers []*Layer) {
	for _, l := range layers {
		if l != nil {
			_ = l.Close()
		}
	}
}

// UpdateConfig applies cfg: the surface is resized, the rate cap and blur
// filter are replaced and the layers are regenerated. A running frame loop
// is restarted so that a change of the animation flag takes effect.
func (b *Background) UpdateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.applyConfig(cfg); err != nil {
		return err
	}
	b.ctrl.SetRate(b.cfg.FPSCap, b.cfg.Animation)
	if err := b.updateLayers(b.specs); err != nil {
		return err
	}

	if b.playing {
		b.disarm()
		b.arm()
	}
	return nil
}

// applyConfig stores cfg, resizes the surface and selects the blur filter.
// Must be called with mu held or before b is shared.
func (b *Background) applyConfig(cfg Config) error {
	cfg = cfg.normalized()

	var blur filter.Func
	if cfg.Blur && cfg.BlurRadius >= 1 {
		fn, err := filter.Lookup(filter.Method(cfg.BlurMethod), cfg.BlurAlpha)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		blur = fn
	}

	if cfg.hasSize() && (cfg.RenderWidth != b.surface.Width() || cfg.RenderHeight != b.surface.Height()) {
		if err := b.surface.Resize(cfg.RenderWidth, cfg.RenderHeight); err != nil {
			return fmt.Errorf("gaussbg: resize surface: %w", err)
		}
		b.log.Info("surface resized", "width", cfg.RenderWidth, "height", cfg.RenderHeight)
	}

	b.cfg = cfg
	b.blur = blur
	return nil
}

// Close stops the frame loop and releases the layer buffers. The surface
// is not closed.
func (b *Background) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.playing = false
	b.disarm()
	closeLayers(b.layers)
	b.layers = nil
	return nil
}
