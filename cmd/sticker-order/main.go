// Command sticker-order turns an order configuration and the cached design
// records into a tab-separated manifest for a print shop, with optional
// cost and resale totals.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dandybouquet/dandy-merch-tools/internal/order"
	"github.com/dandybouquet/dandy-merch-tools/internal/version"
)

func main() {
	pricesPath := flag.String("prices", "", "Path to the prices config yaml file")
	outPath := flag.String("out", "", "Path to save the generated order text to")
	summary := flag.Bool("summary", false, "Add summary info to the end of the order text")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sticker-order %s\n", version.String())
		return
	}

	if flag.NArg() != 1 {
		fmt.Println("Usage: sticker-order [-prices <path>] [-out <path>] [-summary] <order.yaml>")
		os.Exit(1)
	}
	configPath := flag.Arg(0)

	fmt.Printf("Loading order config: %s\n", configPath)
	file, err := order.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	items, err := file.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	text := order.Manifest(items)

	if *summary {
		// The prices file from the order settings wins over the flag.
		path := file.PricesPath(*pricesPath)
		if path == "" {
			fmt.Fprintln(os.Stderr, "No prices config specified (use -prices or settings.prices_config)")
			os.Exit(1)
		}
		fmt.Printf("Loading prices config: %s\n", path)
		prices, err := order.LoadPrices(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		text += order.Summary(items, prices)
	}

	fmt.Print(text)

	if *outPath != "" {
		fmt.Printf("Saving order text to %s\n", *outPath)
		if err := os.WriteFile(*outPath, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}
