// Package gaussbg renders animated, blurred orb backgrounds.
//
// # Overview
//
// A background is a stack of layers. Each layer is a sheet of one fill
// color with circular holes ("orbs") cut into it. Orbs drift at a fixed
// velocity and bounce off the edges of their own bounding cell. Every
// accepted frame the layers are repainted back to front over the previous
// frame, and the assembled image is blurred so the holes read as soft
// blobs. Translucent layers and old frames show through the holes, which
// leaves trails behind moving orbs; Config.ClearFrames starts every frame
// from a transparent surface instead.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gaussbg"
//	    "github.com/gogpu/gaussbg/surface"
//	)
//
//	s := surface.NewImageSurface(320, 130)
//	bg, err := gaussbg.NewBackground(s, []gaussbg.LayerSpec{
//	    {Orbs: 4, Radius: 40, MaxVelocity: 1, Color: "#4400ffcc", Columns: 2},
//	    {Orbs: 3, Radius: 60, MaxVelocity: 0.5, Color: "#ff0066"},
//	}, gaussbg.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bg.Play()
//	defer bg.Pause()
//
// # Frame Pacing
//
// Velocities are in pixels per accepted frame, not per second. Speed is
// controlled by the frame rate cap: a Controller accepts a frame only when
// more than one timestep has elapsed since the last accepted frame, and
// carries the remainder over so that scheduler jitter does not drift.
//
// Frames are driven by a Scheduler. TimerScheduler runs the loop on its
// own; FrameScheduler lets a host frame loop (a game engine Update, a
// terminal event loop) run pending callbacks itself. Hosts that want full
// control call Tick or Render directly and never call Play.
//
// # Blur
//
// Four CPU filters are available through Config.BlurMethod: stackblur,
// fastblur, integralblur and stackboxblur. The blur reads the surface back
// as straight-alpha pixels; a surface that cannot be read back makes the
// frame fail with a *PixelAccessError.
//
// # Logging
//
// The package is silent by default. SetLogger installs a *slog.Logger
// shared by every background; WithLogger overrides it for one instance.
package gaussbg
