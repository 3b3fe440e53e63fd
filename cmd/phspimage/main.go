// Command phspimage renders a phase-space file's particle crossings as a
// grayscale fluence density map.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/particlezoo/phsp/internal/allformats"
	"github.com/particlezoo/phsp/internal/cliutil"
	"github.com/particlezoo/phsp/internal/fluence"
	"github.com/particlezoo/phsp/registry"
)

var (
	inputFormat  string
	maxParticles int64
	showFormats  bool

	width, height         int
	halfWidth, halfHeight float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phspimage <in> <out.png>",
		Short: "Render a phase-space file's fluence as a grayscale PNG",
		Args:  cobra.MaximumNArgs(2),
		Run:   run,
	}

	f := rootCmd.Flags()
	f.StringVar(&inputFormat, "inputFormat", "", "explicit format name for the input file")
	f.Int64Var(&maxParticles, "maxParticles", 0, "stop after this many particles have been read (0: unlimited)")
	f.BoolVar(&showFormats, "formats", false, "list registered formats and exit")
	f.IntVar(&width, "width", 512, "output image width in pixels")
	f.IntVar(&height, "height", 512, "output image height in pixels")
	f.Float64Var(&halfWidth, "halfWidth", 20, "half-width of the scored region on the X axis (cm)")
	f.Float64Var(&halfHeight, "halfHeight", 20, "half-height of the scored region on the Y axis (cm)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	if showFormats {
		cliutil.PrintFormats(os.Stdout)
		return
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "error: exactly two positional arguments <in> <out.png> are required")
		os.Exit(1)
	}
	inPath, outPath := args[0], args[1]

	collector := &cliutil.Collector{}

	reader, err := registry.OpenReader(inPath, inputFormat, registry.Options{})
	if err != nil {
		cliutil.FatalWrap(os.Stderr, err, "opening "+inPath)
		os.Exit(1)
	}

	hist := fluence.NewHistogram(width, height, halfWidth, halfHeight)

	s := cliutil.Spin(fmt.Sprintf("Imaging %s... ", inPath))

	for {
		if maxParticles > 0 && reader.ParticlesRead() >= maxParticles {
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

		hist.Accumulate(p)
	}

	for _, w := range reader.Warnings() {
		collector.AddWarning(fmt.Sprintf("%s: %s", inPath, w))
	}
	if err := reader.Close(); err != nil {
		collector.AddError(fmt.Errorf("closing %s: %w", inPath, err))
	}

	out, err := os.Create(outPath)
	if err != nil {
		collector.AddError(fmt.Errorf("creating %s: %w", outPath, err))
	} else {
		if err := hist.WriteTo(out); err != nil {
			collector.AddError(fmt.Errorf("writing %s: %w", outPath, err))
		}
		if err := out.Close(); err != nil {
			collector.AddError(fmt.Errorf("closing %s: %w", outPath, err))
		}
	}

	s.Stop()
	collector.Report(os.Stderr)

	if collector.HasErrors() {
		os.Exit(1)
	}

	fmt.Printf("Wrote fluence image to %s (%d particle(s) read)\n", outPath, reader.ParticlesRead())
}
