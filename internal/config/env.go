package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gogpu/gaussbg"
)

// Prefix starts the name of every environment override.
const Prefix = "GAUSSBG_"

// Environment variable names, without Prefix.
const (
	EnvBlur           = "BLUR"
	EnvBlurRadius     = "BLUR_RADIUS"
	EnvBlurMethod     = "BLUR_METHOD"
	EnvBlurIterations = "BLUR_ITERATIONS"
	EnvBlurAlpha      = "BLUR_ALPHA"
	EnvAnimation      = "ANIMATION"
	EnvFPSCap         = "FPS_CAP"
	EnvRenderWidth    = "RENDER_WIDTH"
	EnvRenderHeight   = "RENDER_HEIGHT"
	EnvClearFrames    = "CLEAR_FRAMES"
	EnvDebug          = "DEBUG"
	EnvSurface        = "SURFACE"
)

// Environ collects the GAUSSBG_ variables from the given .env files and
// the process environment. Missing files are skipped; later files override
// earlier ones and the process environment overrides them all.
func Environ(dotenv ...string) (map[string]string, error) {
	env := make(map[string]string)
	for _, path := range dotenv {
		vars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		for k, v := range vars {
			if strings.HasPrefix(k, Prefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, Prefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides the options of cfg present in env. Names with Prefix
// that are not recognized are rejected.
func ApplyEnv(cfg *gaussbg.Config, env map[string]string) error {
	for key, val := range env {
		name, ok := strings.CutPrefix(key, Prefix)
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)

		var err error
		switch name {
		case EnvBlur:
			cfg.Blur, err = strconv.ParseBool(val)
		case EnvBlurRadius:
			cfg.BlurRadius, err = strconv.Atoi(val)
		case EnvBlurMethod:
			cfg.BlurMethod = gaussbg.BlurMethod(val)
		case EnvBlurIterations:
			cfg.BlurIterations, err = strconv.Atoi(val)
		case EnvBlurAlpha:
			cfg.BlurAlpha, err = strconv.ParseBool(val)
		case EnvAnimation:
			cfg.Animation, err = strconv.ParseBool(val)
		case EnvFPSCap:
			cfg.FPSCap, err = strconv.ParseFloat(val, 64)
		case EnvRenderWidth:
			cfg.RenderWidth, err = strconv.Atoi(val)
		case EnvRenderHeight:
			cfg.RenderHeight, err = strconv.Atoi(val)
		case EnvClearFrames:
			cfg.ClearFrames, err = strconv.ParseBool(val)
		case EnvDebug:
			cfg.Debug, err = strconv.ParseBool(val)
		case EnvSurface:
			// Not a background option; Resolve applies it to File.
		default:
			return fmt.Errorf("%w: unknown variable %s", ErrInvalid, key)
		}
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, val, err)
		}
	}
	return nil
}

// Resolve loads path when it is not empty, or the defaults otherwise, then
// applies the environment overrides from dotenv files and the process.
func Resolve(path string, dotenv ...string) (File, error) {
	f := Default()
	if path != "" {
		var err error
		if f, err = Load(path); err != nil {
			return File{}, err
		}
	}

	env, err := Environ(dotenv...)
	if err != nil {
		return File{}, err
	}
	if err := ApplyEnv(&f.Config, env); err != nil {
		return File{}, err
	}
	if name, ok := env[Prefix+EnvSurface]; ok {
		f.Surface = strings.TrimSpace(name)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}
