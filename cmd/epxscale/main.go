package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"epxscale/pkg/epx"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("epxscale", flag.ContinueOnError)
	nearestFlag := fs.String("nearest", "", "Nearest-neighbor output path (default: <input>_nearest.png)")
	epxFlag := fs.String("epx", "", "EPX output path (default: <input>_epx.png)")
	sheetFlag := fs.String("sheet", "", "Also write a side-by-side comparison sheet (PNG) to this path")
	workersFlag := fs.Int("workers", 1, "Goroutines used for scaling (0: one per CPU)")
	verboseFlag := fs.Bool("v", false, "Log pipeline details to stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: epxscale [flags] <input-image>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input image, got %d", fs.NArg())
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	epx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	inputFilePath := fs.Arg(0)
	nearestPath := *nearestFlag
	if nearestPath == "" {
		nearestPath = outputPath(inputFilePath, "nearest")
	}
	epxPath := *epxFlag
	if epxPath == "" {
		epxPath = outputPath(inputFilePath, "epx")
	}
	workers := *workersFlag
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fmt.Printf("Loading: %s\n", inputFilePath)
	pixels, width, height, err := loadImage(inputFilePath)
	if err != nil {
		return err
	}

	startTime := time.Now()
	res, err := epx.Upscale(pixels, height, width, &epx.Params{Workers: workers})
	if err != nil {
		return fmt.Errorf("upscaling: %w", err)
	}
	elapsed := time.Since(startTime)

	outW, outH := res.EPX.Cols(), res.EPX.Rows()
	if err := saveImage(nearestPath, res.NearestBuffer(), outW, outH); err != nil {
		return fmt.Errorf("writing nearest-neighbor result: %w", err)
	}
	if err := saveImage(epxPath, res.EPXBuffer(), outW, outH); err != nil {
		return fmt.Errorf("writing EPX result: %w", err)
	}
	if *sheetFlag != "" {
		if err := epx.WriteSheet(res, *sheetFlag); err != nil {
			return err
		}
	}

	changed, total := res.Changed(), outW*outH
	fmt.Println()
	fmt.Printf("=== Upscale Results (%.3fs) ===\n", elapsed.Seconds())
	fmt.Printf("  Source size:     %d x %d\n", width, height)
	fmt.Printf("  Output size:     %d x %d\n", outW, outH)
	fmt.Printf("  EPX changed:     %d of %d pixels (%.1f%%)\n", changed, total, percent(changed, total))
	fmt.Printf("  Nearest:         %s\n", nearestPath)
	fmt.Printf("  EPX:             %s\n", epxPath)
	if *sheetFlag != "" {
		fmt.Printf("  Sheet:           %s\n", *sheetFlag)
	}
	fmt.Println("==============================")

	return nil
}

// outputPath derives "<dir>/<base>_<suffix>.png" from the input path.
func outputPath(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_" + suffix + ".png"
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
