// Command light2d renders a built-in or YAML-described scene to a PNG
// file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yunhao-qian/light2d/pkg/imageio"
	"github.com/yunhao-qian/light2d/pkg/integrator"
	"github.com/yunhao-qian/light2d/pkg/renderer"
	"github.com/yunhao-qian/light2d/pkg/scene"
)

// config holds all the configuration for the renderer invocation.
type config struct {
	SceneType        string
	Width, Height    int
	NTiles           int
	NSamples         int
	NSteps           int
	RussianRouletteQ float64
	Seed             int64
	Output           string
	SVGPreview       string
	Help             bool
}

func main() {
	cfg := parseFlags()
	if cfg.Help {
		showHelp()
		return
	}

	sceneObj, integratorOverride, err := createScene(cfg.SceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	if cfg.SVGPreview != "" {
		if err := writeSVGPreview(cfg.SVGPreview, sceneObj); err != nil {
			fmt.Printf("Error writing SVG preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene preview saved as %s\n", cfg.SVGPreview)
	}

	applyIntegratorOverride(&cfg, integratorOverride)

	pt, err := integrator.NewPathTracer(sceneObj.Aggregate(), cfg.NSamples, cfg.NSteps, cfg.RussianRouletteQ)
	if err != nil {
		fmt.Printf("Error configuring integrator: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting light2d renderer...")
	start := time.Now()

	film, err := renderer.Render(pt, sceneObj.Region, cfg.Width, cfg.Height, cfg.NTiles, cfg.Seed)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(start))

	if err := savePNG(cfg.Output, film); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", cfg.Output)
}

// parseFlags parses command line flags and returns the configuration.
func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.SceneType, "scene", "hello-circle", "Scene name or YAML file path")
	flag.IntVar(&cfg.Width, "width", 400, "Film width in pixels")
	flag.IntVar(&cfg.Height, "height", 400, "Film height in pixels")
	flag.IntVar(&cfg.NTiles, "tiles", 4, "Number of tiles per axis")
	flag.IntVar(&cfg.NSamples, "n-samples", 8, "Samples per spatial axis (n-samples^2 per pixel)")
	flag.IntVar(&cfg.NSteps, "n-steps", 3, "Guaranteed bounces before Russian roulette")
	flag.Float64Var(&cfg.RussianRouletteQ, "rr-q", 0.05, "Russian roulette continuation probability")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Master RNG seed")
	flag.StringVar(&cfg.Output, "output", "render.png", "Output PNG path")
	flag.StringVar(&cfg.SVGPreview, "svg-preview", "", "Optional path to write an SVG scene layout preview")
	flag.BoolVar(&cfg.Help, "help", false, "Show help information")
	flag.Parse()
	return cfg
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("light2d")
	fmt.Println("Usage: light2d [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  hello-circle   - One emissive circle")
	fmt.Println("  ring           - A ring of emissive circles")
	fmt.Println("  diffuse-floor  - A diffuse floor lit from above, with one mirror disc")
	fmt.Println("  Or a YAML file path, e.g. scenes/my-scene.yaml")
}

// createScene resolves sceneType into a scene.Scene, and, if it names
// a YAML file, also returns the integrator parameters it declares.
func createScene(sceneType string) (*scene.Scene, *scene.IntegratorDoc, error) {
	if filepath.Ext(sceneType) == ".yaml" || filepath.Ext(sceneType) == ".yml" {
		f, err := os.Open(sceneType)
		if err != nil {
			return nil, nil, fmt.Errorf("opening scene file: %w", err)
		}
		defer f.Close()

		sceneObj, integratorDoc, err := scene.Load(f)
		if err != nil {
			return nil, nil, fmt.Errorf("loading scene file: %w", err)
		}
		return sceneObj, &integratorDoc, nil
	}

	switch sceneType {
	case "hello-circle":
		return scene.HelloCircle(), nil, nil
	case "ring":
		return scene.Ring(8, 5, 0.6), nil, nil
	case "diffuse-floor":
		return scene.DiffuseFloor(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// applyIntegratorOverride lets a loaded YAML document's integrator
// block override the flag-provided defaults.
func applyIntegratorOverride(cfg *config, doc *scene.IntegratorDoc) {
	if doc == nil {
		return
	}
	if doc.NSamples > 0 {
		cfg.NSamples = doc.NSamples
	}
	if doc.NSteps > 0 {
		cfg.NSteps = doc.NSteps
	}
	if doc.RussianRouletteQ > 0 {
		cfg.RussianRouletteQ = doc.RussianRouletteQ
	}
}

func writeSVGPreview(path string, sceneObj *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scene.WritePreviewSVG(f, sceneObj)
	return nil
}

func savePNG(path string, film renderer.Film) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return imageio.WritePNG(f, film)
}
