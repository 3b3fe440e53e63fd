// Command phspcombine concatenates one or more phase-space files of any
// registered format into a single output file, preserving history
// counts across the join.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/particlezoo/phsp/internal/allformats"
	"github.com/particlezoo/phsp/internal/cliutil"
	"github.com/particlezoo/phsp/internal/fphash"
	"github.com/particlezoo/phsp/registry"
)

var (
	inputFormat       string
	outputFormat      string
	maxParticles      int64
	showFormats       bool
	outputFile        string
	preserveConstants bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phspcombine <input> [input...]",
		Short: "Combine multiple phase-space files into one",
		Args:  cobra.ArbitraryArgs,
		Run:   run,
	}

	rootCmd.Flags().StringVar(&inputFormat, "inputFormat", "", "explicit format name for every input file (default: resolve by extension)")
	rootCmd.Flags().StringVar(&outputFormat, "outputFormat", "", "explicit format name for the output file (default: resolve by extension)")
	rootCmd.Flags().Int64Var(&maxParticles, "maxParticles", 0, "stop after this many particles have been written (0: unlimited)")
	rootCmd.Flags().BoolVar(&showFormats, "formats", false, "list registered formats and exit")
	rootCmd.Flags().StringVar(&outputFile, "outputFile", "", "path to the combined output file (required)")
	rootCmd.Flags().BoolVar(&preserveConstants, "preserveConstants", false, "require every input to share the first input's fixed-values set")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	if showFormats {
		cliutil.PrintFormats(os.Stdout)
		return
	}

	if outputFile == "" {
		fmt.Fprintln(os.Stderr, "error: --outputFile is required")
		os.Exit(1)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: at least one input path is required")
		os.Exit(1)
	}

	collector := &cliutil.Collector{}

	writer, err := registry.CreateWriter(outputFile, outputFormat, registry.Options{})
	if err != nil {
		cliutil.FatalWrap(os.Stderr, err, "creating "+outputFile)
		os.Exit(1)
	}

	s := cliutil.Spin(fmt.Sprintf("Combining %d file(s) into %s... ", len(args), outputFile))

	var firstFixedHash uint64
	var written int64

inputs:
	for i, path := range args {
		reader, err := registry.OpenReader(path, inputFormat, registry.Options{})
		if err != nil {
			collector.AddError(fmt.Errorf("opening %s: %w", path, err))
			break
		}

		if preserveConstants {
			fv := reader.FixedValues()
			if i == 0 {
				firstFixedHash = fphash.Of(fv)
				writer.SetFixedValues(fv)
			} else if fphash.Of(fv) != firstFixedHash {
				collector.AddError(fmt.Errorf("%s: fixed-values set does not match %s", path, args[0]))
				reader.Close()
				break
			}
		}

		for {
			if maxParticles > 0 && written >= maxParticles {
				break inputs
			}

			p, ok, err := reader.Next()
			if err != nil {
				collector.AddError(fmt.Errorf("reading %s: %w", path, err))
				reader.Close()
				break inputs
			}
			if !ok {
				break
			}

			if err := writer.Write(p); err != nil {
				collector.AddError(fmt.Errorf("writing particle from %s: %w", path, err))
				reader.Close()
				break inputs
			}
			written++
		}

		for _, w := range reader.Warnings() {
			collector.AddWarning(fmt.Sprintf("%s: %s", path, w))
		}

		if err := reader.Close(); err != nil {
			collector.AddError(fmt.Errorf("closing %s: %w", path, err))
			break
		}
	}

	if err := writer.Close(); err != nil {
		collector.AddError(fmt.Errorf("closing %s: %w", outputFile, err))
	}

	s.Stop()
	collector.Report(os.Stderr)

	if collector.HasErrors() {
		os.Exit(1)
	}

	fmt.Printf("Wrote %d particle(s) to %s\n", writer.ParticlesWritten(), outputFile)
}
