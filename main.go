package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/golang/glog"

	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/renderer"
	"github.com/jdf/go-raytracer/pkg/scene"
)

var (
	sceneType  = flag.String("scene", "default", "Scene to render: 'default' or 'cover'")
	width      = flag.Int("width", 400, "Image width in pixels")
	height     = flag.Int("height", 225, "Image height in pixels")
	samples    = flag.Int("samples", 100, "Samples per pixel (1 disables antialiasing)")
	depth      = flag.Int("depth", 50, "Maximum ray bounce depth")
	workers    = flag.Int("workers", 0, "Parallel tile workers (0 = CPU count)")
	seed       = flag.Int64("seed", 0, "Base sampler seed (0 = time-based)")
	output     = flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile to this file")
)

// glogLogger adapts glog to the renderer's Logger interface
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			glog.Exitf("Creating CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Exitf("Starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		glog.Exitf("fatal error: %v", err)
	}
}

func run() error {
	selectedScene, err := createScene(*sceneType)
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		Seed:            *seed,
	}

	r, err := renderer.NewRenderer(selectedScene, config, glogLogger{})
	if err != nil {
		return err
	}

	img, stats, err := r.Render(context.Background())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	glog.Infof("Render completed in %v (%d rays, %d traced per pixel)",
		stats.Elapsed, stats.TotalSamples, stats.TracedPerPixel)

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := writePNG(filename, img); err != nil {
		return err
	}
	glog.Infof("Render saved as %s", filename)
	return nil
}

// createScene builds one of the built-in scenes by name
func createScene(name string) (*scene.Scene, error) {
	aspectRatio := float64(*width) / float64(*height)
	switch name {
	case "default":
		return scene.NewDefaultScene(aspectRatio)
	case "cover":
		return scene.NewCoverScene(aspectRatio, sceneSampler())
	default:
		return nil, fmt.Errorf("unknown scene type %q (want 'default' or 'cover')", name)
	}
}

// sceneSampler returns the sampler used for randomized scene layout
func sceneSampler() *core.Sampler {
	if *seed != 0 {
		return core.NewSampler(*seed)
	}
	return core.NewWorkerSampler(0)
}

// writePNG encodes the assembled pixel buffer to a PNG file. A failure
// here is fatal to the run; no partial file is considered valid.
func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
