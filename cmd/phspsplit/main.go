// Command phspsplit divides a single phase-space file into K roughly
// equal-sized parts, never splitting a Monte Carlo history across a part
// boundary.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/particlezoo/phsp/internal/allformats"
	"github.com/particlezoo/phsp/internal/cliutil"
	"github.com/particlezoo/phsp/phsp"
	"github.com/particlezoo/phsp/registry"
)

var (
	inputFormat  string
	outputFormat string
	maxParticles int64
	showFormats  bool
	numParts     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phspsplit <in>",
		Short: "Split a phase-space file into K roughly equal parts",
		Args:  cobra.MaximumNArgs(1),
		Run:   run,
	}

	f := rootCmd.Flags()
	f.StringVar(&inputFormat, "inputFormat", "", "explicit format name for the input file")
	f.StringVar(&outputFormat, "outputFormat", "", "explicit format name for every output part (default: resolve by extension)")
	f.Int64Var(&maxParticles, "maxParticles", 0, "stop after this many particles have been read (0: unlimited)")
	f.BoolVar(&showFormats, "formats", false, "list registered formats and exit")
	f.IntVarP(&numParts, "numParts", "n", 0, "number of output parts (required)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// partPath builds "<stem>_PartNN<ext>" with NN zero-padded to as many
// digits as numParts itself needs.
func partPath(in string, index, numParts int) string {
	ext := filepath.Ext(in)
	stem := strings.TrimSuffix(in, ext)
	width := len(strconv.Itoa(numParts))

	return fmt.Sprintf("%s_Part%0*d%s", stem, width, index+1, ext)
}

func run(cmd *cobra.Command, args []string) {
	if showFormats {
		cliutil.PrintFormats(os.Stdout)
		return
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "error: exactly one positional input path is required")
		os.Exit(1)
	}
	if numParts <= 0 {
		fmt.Fprintln(os.Stderr, "error: -n/--numParts must be a positive integer")
		os.Exit(1)
	}
	inPath := args[0]

	collector := &cliutil.Collector{}

	reader, err := registry.OpenReader(inPath, inputFormat, registry.Options{})
	if err != nil {
		cliutil.FatalWrap(os.Stderr, err, "opening "+inPath)
		os.Exit(1)
	}

	total := reader.TotalParticles()
	if maxParticles > 0 && maxParticles < total {
		total = maxParticles
	}
	perPart := total / int64(numParts)

	var writers []*phsp.Writer
	for i := 0; i < numParts; i++ {
		path := partPath(inPath, i, numParts)
		w, err := registry.CreateWriter(path, outputFormat, registry.Options{})
		if err != nil {
			cliutil.FatalWrap(os.Stderr, err, "creating "+path)
			for _, prior := range writers {
				prior.Close()
			}
			reader.Close()
			os.Exit(1)
		}
		writers = append(writers, w)
	}

	s := cliutil.Spin(fmt.Sprintf("Splitting %s into %d part(s)... ", inPath, numParts))

	currentPart := 0
	var particlesInPart int64
	var totalRead int64

readLoop:
	for {
		if maxParticles > 0 && totalRead >= maxParticles {
			break
		}

		p, ok, err := reader.Next()
		if err != nil {
			collector.AddError(fmt.Errorf("reading %s: %w", inPath, err))
			break
		}
		if !ok {
			break
		}

		// Advance to the next part only at a history boundary, and never
		// past the last part: overflow from rounding always lands there.
		if currentPart < numParts-1 && particlesInPart >= perPart && p.IsNewHistory() {
			currentPart++
			particlesInPart = 0
		}

		if err := writers[currentPart].Write(p); err != nil {
			collector.AddError(fmt.Errorf("writing part %d: %w", currentPart+1, err))
			break readLoop
		}
		particlesInPart++
		totalRead++
	}

	// Any histories the reader declares but never actually produced a
	// represented particle for belong on the last part, so the sum of
	// every part's history count still equals the original total.
	if remainder := reader.TotalHistories() - reader.HistoriesRead(); remainder > 0 {
		if err := writers[numParts-1].AddAdditionalHistories(uint64(remainder)); err != nil {
			collector.AddError(fmt.Errorf("promoting trailing histories: %w", err))
		}
	}

	for _, w := range reader.Warnings() {
		collector.AddWarning(fmt.Sprintf("%s: %s", inPath, w))
	}
	if err := reader.Close(); err != nil {
		collector.AddError(fmt.Errorf("closing %s: %w", inPath, err))
	}
	for i, w := range writers {
		if err := w.Close(); err != nil {
			collector.AddError(fmt.Errorf("closing part %d: %w", i+1, err))
		}
	}

	s.Stop()
	collector.Report(os.Stderr)

	if collector.HasErrors() {
		os.Exit(1)
	}

	for i, w := range writers {
		fmt.Printf("Wrote %d particle(s) to %s\n", w.ParticlesWritten(), partPath(inPath, i, numParts))
	}
}
