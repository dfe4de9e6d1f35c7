package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/renderer"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int
	samples   int
	depth     int
	threads   int
	seed      int64
	format    string
	out       string
}

func main() {
	defaults := renderer.DefaultConfig()

	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene: a built-in name, a file name in scenes/, or a path to a .json scene")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	flag.IntVar(&opts.threads, "threads", defaults.Threads, "Worker goroutines; the image is split into threads x threads tasks")
	flag.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed for sampling and random scene layouts")
	flag.StringVar(&opts.format, "format", "ppm", "Output format: 'ppm' or 'png'")
	flag.StringVar(&opts.out, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp(renderer.NewDefaultLogger())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp(logger core.Logger) {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	printScenes(os.Stdout, logger)
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// printScenes lists every scene group with the names accepted by -scene
func printScenes(w io.Writer, logger core.Logger) {
	response, err := scene.ListAllScenes(logger)
	if err != nil {
		logger.Printf("Warning: %v\n", err)
		return
	}
	for _, group := range response.Groups {
		fmt.Fprintf(w, "  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "    %-14s %s\n", strings.TrimPrefix(info.ID, "json:"), info.Description)
		}
	}
}

// run renders the selected scene and writes the image
func run(ctx context.Context, opts options, logger core.Logger) error {
	if opts.format != "ppm" && opts.format != "png" {
		return fmt.Errorf("unknown output format %q, expected ppm or png", opts.format)
	}

	logger.Printf("Starting Path Tracer...\n")

	selectedScene, err := createScene(opts.sceneType, opts.seed, renderer.CameraConfig{Width: opts.width})
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d spheres)\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, renderer.Config{Threads: opts.threads, Seed: opts.seed}, logger)
	raytracer.MergeSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
	})

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Render completed in %v (%.0f samples/s)\n", stats.Duration, stats.SamplesPerSecond())
	logger.Printf("Average luminance: %.3f\n", img.AverageLuminance(stats.SamplesPerPixel))

	filename := opts.out
	if filename == "" {
		outputDir := createOutputDir(opts.sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, opts.format))
	}

	if err := writeImage(filename, img, stats.SamplesPerPixel, opts.format); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a scene name: built-in scenes first, then JSON scene files
func createScene(sceneType string, seed int64, cameraOverride renderer.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.Create(sceneType, seed, cameraOverride)
}

// createOutputDir returns output/<name> where name is the scene id or the scene file's base name
func createOutputDir(sceneType string) string {
	name := sceneType
	if strings.HasSuffix(sceneType, ".json") {
		name = strings.TrimSuffix(filepath.Base(sceneType), ".json")
	}
	if name == "" {
		name = "scene"
	}
	return filepath.Join("output", name)
}

// writeImage encodes the accumulated image as PPM or PNG
func writeImage(filename string, img *renderer.Image, samplesPerPixel int, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	switch format {
	case "png":
		err = png.Encode(file, img.ToRGBA(samplesPerPixel))
	default:
		err = img.WritePPM(file, samplesPerPixel)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("error saving %s: %w", strings.ToUpper(format), err)
	}

	return file.Close()
}
