package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels     int           // Number of pixels rendered
	SamplesPerPixel int           // Configured samples per pixel
	TracedPerPixel  int           // Rays actually traced per pixel (stratified grid may exceed the configured count)
	TotalSamples    int           // Total rays traced
	Elapsed         time.Duration // Wall-clock render time
}
