package renderer

import (
	"context"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/geometry"
	"github.com/jdf/go-raytracer/pkg/material"
)

func TestNewRenderer_Validation(t *testing.T) {
	s := testScene(t, geometry.NewWorld())

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{"valid", Config{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: 5}, false},
		{"zero width", Config{Width: 0, Height: 10, SamplesPerPixel: 1, MaxDepth: 5}, true},
		{"negative height", Config{Width: 10, Height: -1, SamplesPerPixel: 1, MaxDepth: 5}, true},
		{"zero samples", Config{Width: 10, Height: 10, SamplesPerPixel: 0, MaxDepth: 5}, true},
		{"negative depth", Config{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: -1}, true},
		{"negative tile size", Config{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: 5, TileSize: -8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRenderer(s, tt.config, nil)
			if tt.expectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}

	if _, err := NewRenderer(nil, DefaultConfig(10, 10), nil); err == nil {
		t.Error("Expected error for nil scene")
	}
}

func TestStratumGrid(t *testing.T) {
	tests := []struct {
		samples  int
		expected int
	}{
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{100, 10},
	}

	for _, tt := range tests {
		if got := stratumGrid(tt.samples); got != tt.expected {
			t.Errorf("stratumGrid(%d): expected %d, got %d", tt.samples, tt.expected, got)
		}
	}
}

func TestTileBounds(t *testing.T) {
	tiles := tileBounds(100, 70, 64)

	expected := []image.Rectangle{
		image.Rect(0, 0, 64, 64),
		image.Rect(64, 0, 100, 64),
		image.Rect(0, 64, 64, 70),
		image.Rect(64, 64, 100, 70),
	}
	if diff := cmp.Diff(expected, tiles); diff != "" {
		t.Errorf("Unexpected tiles (-want +got):\n%s", diff)
	}

	// Tiles must cover every pixel exactly once
	covered := make(map[image.Point]int)
	for _, tile := range tiles {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				covered[image.Pt(x, y)]++
			}
		}
	}
	if len(covered) != 100*70 {
		t.Fatalf("Expected %d covered pixels, got %d", 100*70, len(covered))
	}
	for point, count := range covered {
		if count != 1 {
			t.Fatalf("Pixel %v covered %d times", point, count)
		}
	}
}

func TestRender_ImageShapeAndStats(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 1), 0.5, mat))
	s := testScene(t, world)
	r := testRenderer(t, s, Config{
		Width: 32, Height: 24, SamplesPerPixel: 5, MaxDepth: 4, TileSize: 16, Seed: 42,
	})

	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 32, 24) {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 32*24 {
		t.Errorf("Expected %d pixels, got %d", 32*24, stats.TotalPixels)
	}
	// 5 samples stratify into a 3x3 grid, so 9 rays are traced per pixel
	if stats.TracedPerPixel != 9 {
		t.Errorf("Expected 9 traced rays per pixel, got %d", stats.TracedPerPixel)
	}
	if stats.TotalSamples != 32*24*9 {
		t.Errorf("Expected %d total samples, got %d", 32*24*9, stats.TotalSamples)
	}

	// Every pixel must be opaque and written
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Pixel (%d,%d) not opaque", x, y)
			}
		}
	}
}

func TestRender_SeededRenderIsReproducible(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.3, 0.6, 0.2))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 1), 0.5, mat))

	render := func(workers int) *image.RGBA {
		s := testScene(t, world)
		r := testRenderer(t, s, Config{
			Width: 24, Height: 24, SamplesPerPixel: 4, MaxDepth: 4,
			TileSize: 8, NumWorkers: workers, Seed: 1234,
		})
		img, _, err := r.Render(context.Background())
		if err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		return img
	}

	// Tile seeds derive from the base seed, so worker count cannot
	// change the output
	first := render(1)
	second := render(4)
	if diff := cmp.Diff(first.Pix, second.Pix); diff != "" {
		t.Errorf("Seeded renders differ (-1 worker +4 workers):\n%s", diff)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	s := testScene(t, geometry.NewWorld())
	r := testRenderer(t, s, Config{Width: 64, Height: 64, SamplesPerPixel: 1, MaxDepth: 2, TileSize: 8})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := r.Render(ctx); err == nil {
		t.Error("Expected error from cancelled context")
	}
}

func TestRender_SingleSphereDarkerThanSky(t *testing.T) {
	// A gray lambertian sphere under a uniform sky: every path through
	// the sphere is attenuated by at least one factor of 0.5, so the
	// pixel covering the sphere is strictly darker than a pixel that
	// sees the sky directly, whatever the random scatter directions
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 1), 0.5, mat))
	s := testScene(t, world)
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = s.TopColor
	r := testRenderer(t, s, Config{
		Width: 9, Height: 9, SamplesPerPixel: 1, MaxDepth: 4, Seed: 42,
	})

	img, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	center := img.RGBAAt(4, 4) // looks at the sphere
	corner := img.RGBAAt(0, 0) // sees only sky
	centerSum := int(center.R) + int(center.G) + int(center.B)
	cornerSum := int(corner.R) + int(corner.G) + int(corner.B)
	if centerSum >= cornerSum {
		t.Errorf("Expected sphere pixel %v darker than sky pixel %v", center, corner)
	}
}

func TestRender_AlbedoSweepStaysFinite(t *testing.T) {
	// Scaling the albedo from 0 to 1 must never produce NaNs or negative
	// radiance, and brightness must not decrease as albedo grows
	prevSum := -1
	for i := 0; i <= 4; i++ {
		albedo := float64(i) / 4.0
		mat := material.NewLambertian(core.NewVec3(albedo, albedo, albedo))
		world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 1), 0.5, mat))
		s := testScene(t, world)
		r := testRenderer(t, s, Config{
			Width: 9, Height: 9, SamplesPerPixel: 1, MaxDepth: 4, Seed: 42,
		})

		sampler := core.NewSampler(42)
		ray := s.Camera.ShootRayAt(0.5, 0.5, sampler)
		radiance := r.RayColor(ray, core.NewSampler(42), 4)
		if math.IsNaN(radiance.X) || math.IsNaN(radiance.Y) || math.IsNaN(radiance.Z) {
			t.Fatalf("NaN radiance at albedo %v", albedo)
		}
		if radiance.X < 0 || radiance.Y < 0 || radiance.Z < 0 {
			t.Fatalf("Negative radiance %v at albedo %v", radiance, albedo)
		}

		img, _, err := r.Render(context.Background())
		if err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		center := img.RGBAAt(4, 4)
		sum := int(center.R) + int(center.G) + int(center.B)
		if sum < prevSum {
			t.Fatalf("Brightness decreased from %d to %d at albedo %v", prevSum, sum, albedo)
		}
		prevSum = sum
	}
}
