// process-translocations converts a DepMap fusion call table into the
// translocations.json document served by the Correlate front end. Cell lines
// are restricted to those listed in web_data/metadata.json, and only genes
// fused in at least 3 cell lines are kept.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"

	_ "github.com/fredrikwermeling/correlate-v2/compileinfoprint"
	"github.com/fredrikwermeling/correlate-v2/fusion"
	"github.com/fredrikwermeling/correlate-v2/webdata"
)

// Genes fused in fewer cell lines than this are left out of the output.
const minCellLines = 3

var client *storage.Client

func main() {
	var webDataDir string
	var plotHist bool
	flag.StringVar(&webDataDir, "webdata", "", "Path to the web_data directory. Defaults to ./web_data, then to ../web_data relative to the executable.")
	flag.BoolVar(&plotHist, "hist", false, "Print a histogram of fused cell line counts per gene to stderr.")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: process-translocations [flags] <OmicsFusionFiltered.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	fusionFile := flag.Arg(0)

	if strings.HasPrefix(fusionFile, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	dir := webdata.Locate(webDataDir)

	meta, err := webdata.ReadMetadata(dir)
	if err != nil {
		log.Fatalln(err)
	}
	universe := meta.CellLineSet()
	log.Printf("Loaded %d cell lines from %s\n", len(universe), webdata.MetadataFile)

	events, err := fusion.ReadEvents(fusionFile, universe, client)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Found %d fusion events in valid cell lines\n", len(events))

	summary := fusion.Summarize(fusion.Index(events), universe, minCellLines)
	log.Printf("Genes with fusions in >= %d cell lines: %d\n", minCellLines, len(summary.Genes))

	outPath, err := webdata.WriteTranslocations(dir, summary)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Wrote %s\n", outPath)
	log.Printf("  %d genes\n", len(summary.Genes))
	log.Printf("  Top genes by fusion count: %v\n", summary.TopGenes(10))

	if err := reportCounts(summary, plotHist); err != nil {
		log.Fatalln(err)
	}
}

// reportCounts summarizes the distribution of fused cell line counts across
// the kept genes.
func reportCounts(summary fusion.Summary, plotHist bool) error {
	if len(summary.Genes) < 1 {
		return nil
	}

	counts := make([]float64, 0, len(summary.Genes))
	for _, gene := range summary.Genes {
		counts = append(counts, float64(summary.GeneCounts[gene]))
	}

	data := stats.LoadRawData(counts)

	mean, err := data.Mean()
	if err != nil {
		return err
	}

	sd, err := data.StandardDeviation()
	if err != nil {
		return err
	}

	max, err := data.Max()
	if err != nil {
		return err
	}

	log.Printf("Fused cell lines per gene: mean %.2f, SD %.2f, max %.0f\n", mean, sd, max)

	if !plotHist {
		return nil
	}

	hist := histogram.Hist(25, counts)

	return histogram.Fprint(os.Stderr, hist, histogram.Linear(5))
}
