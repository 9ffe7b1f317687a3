// Command process-stickers generates die-cut print files for the sticker
// designs listed in a YAML configuration: a full bleed image, a cut mask
// for Illustrator Image Trace, a preview, and a cached sizing record.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dandybouquet/dandy-merch-tools/internal/design"
	"github.com/dandybouquet/dandy-merch-tools/internal/pipeline"
	"github.com/dandybouquet/dandy-merch-tools/internal/version"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "Path to config yaml file")
	jobs := flag.Int("jobs", 1, "Number of designs to process in parallel")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("process-stickers %s\n", version.String())
		return
	}

	fmt.Printf("Loading config: %s\n", *configPath)
	cfg, err := design.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Positional arguments narrow the run to the named designs.
	designs := pipeline.Filter(cfg.Designs, flag.Args())
	if len(designs) == 0 {
		fmt.Fprintf(os.Stderr, "No designs in %s match %v\n", *configPath, flag.Args())
		os.Exit(1)
	}

	results := pipeline.Run(designs, *jobs)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed to process %s: %v\n", res.Name, res.Err)
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d designs failed\n", failed, len(results))
		os.Exit(1)
	}
}
