package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smoothaha/pkg/biomarker"
	"smoothaha/pkg/config"
	"smoothaha/pkg/dataset"
	"smoothaha/pkg/interpolation"
	"smoothaha/pkg/render"
	"smoothaha/pkg/segments"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "CSV file with per-segment biomarker values (one row per case)")
	caseID := flag.String("case", "", "Case identifier to plot (default: all cases in the file)")
	biomarkerName := flag.String("biomarker", "", "Biomarker type (default: derived from the input file name)")
	outputDir := flag.String("output", "", "Directory for rendered plots (default: from config)")
	configPath := flag.String("config", "smoothaha.yaml", "Path to the YAML configuration file")
	initConfig := flag.Bool("init-config", false, "Write a default configuration file and exit")
	imageSize := flag.Int("size", 0, "Output image size in pixels (overrides config)")
	flag.Parse()

	if *initConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *outputDir != "" {
		cfg.Output.Directory = *outputDir
	}
	if *imageSize > 0 {
		cfg.Render.ImageSize = *imageSize
	}

	table, err := dataset.Load(*inputFile)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	name := table.Biomarker()
	if *biomarkerName != "" {
		name = *biomarkerName
	}
	kind, err := biomarker.ParseKind(name)
	if err != nil {
		log.Fatalf("Failed to resolve biomarker: %v", err)
	}
	preset, err := biomarker.PresetFor(kind)
	if err != nil {
		log.Fatalf("Failed to resolve biomarker preset: %v", err)
	}

	ids := table.CaseIDs()
	if *caseID != "" {
		ids = []string{*caseID}
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Println("================================")
		fmt.Println("SMOOTH AHA 17/18-SEGMENT BULLSEYE PLOTS")
		fmt.Printf("Biomarker: %s | Cases: %d\n", kind, len(ids))
		fmt.Println("================================")
	}

	opts := render.Options{
		Size:       cfg.Render.ImageSize,
		DrawBounds: cfg.Render.DrawBounds,
		Annotate:   cfg.Render.AnnotateValues,
	}

	startTime := time.Now()
	for _, id := range ids {
		clinicalCase, err := table.Case(id)
		if err != nil {
			log.Fatalf("Failed to read case: %v", err)
		}

		set, err := segments.FromNamed(clinicalCase.Values)
		if err != nil {
			log.Fatalf("Case %q: %v", id, err)
		}

		ri, err := interpolation.NewRadialInterpolator(set,
			cfg.Interpolation.AngularResolution, cfg.Interpolation.RadialResolution)
		if err != nil {
			log.Fatalf("Case %q: %v", id, err)
		}

		grid := ri.Interpolate()
		preset.Clamp(grid)

		plot, err := render.NewBullseye(set, grid, preset, opts)
		if err != nil {
			log.Fatalf("Case %q: %v", id, err)
		}

		outputPath := filepath.Join(cfg.Output.Directory, sanitizeFilename(id)+".png")
		if err := plot.SavePNG(outputPath); err != nil {
			log.Fatalf("Case %q: failed to save plot: %v", id, err)
		}

		if cfg.Output.Verbose {
			fmt.Printf("Rendered %d-segment %s plot for case %q -> %s\n",
				set.Len(), kind, id, outputPath)
		}
	}

	if cfg.Output.Verbose {
		fmt.Printf("\nDone: %d plot(s) in %.2f seconds\n", len(ids), time.Since(startTime).Seconds())
	}
}

// sanitizeFilename makes a case identifier safe to use as a file name.
func sanitizeFilename(id string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(id)
}
