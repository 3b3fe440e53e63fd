// Command phspconvert copies a single phase-space file from one
// registered format to another, optionally projecting particles onto a
// scoring plane and filtering which particles are carried over.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/particlezoo/phsp/internal/allformats"
	"github.com/particlezoo/phsp/internal/cliutil"
	"github.com/particlezoo/phsp/particle"
	"github.com/particlezoo/phsp/registry"
)

var (
	inputFormat       string
	outputFormat      string
	maxParticles      int64
	showFormats       bool
	preserveConstants bool
	errorOnWarning    bool

	projectToX, projectToY, projectToZ float64

	photonsOnly   bool
	electronsOnly bool
	filterByPDG   int32
	minEnergy     float64
	maxEnergy     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phspconvert <in> <out>",
		Short: "Convert a phase-space file between registered formats",
		Args:  cobra.MaximumNArgs(2),
		Run:   run,
	}

	f := rootCmd.Flags()
	f.StringVar(&inputFormat, "inputFormat", "", "explicit format name for the input file")
	f.StringVar(&outputFormat, "outputFormat", "", "explicit format name for the output file")
	f.Int64Var(&maxParticles, "maxParticles", 0, "stop after this many particles have been read (0: unlimited)")
	f.BoolVar(&showFormats, "formats", false, "list registered formats and exit")
	f.BoolVar(&preserveConstants, "preserveConstants", false, "carry the input's fixed-values set onto the output")
	f.BoolVar(&errorOnWarning, "errorOnWarning", false, "exit 1 if any warning was collected")

	f.Float64Var(&projectToX, "projectToX", 0, "project every particle onto the plane X=<cm> before writing")
	f.Float64Var(&projectToY, "projectToY", 0, "project every particle onto the plane Y=<cm> before writing")
	f.Float64Var(&projectToZ, "projectToZ", 0, "project every particle onto the plane Z=<cm> before writing")

	f.BoolVar(&photonsOnly, "photonsOnly", false, "keep only photons")
	f.BoolVar(&electronsOnly, "electronsOnly", false, "keep only electrons")
	f.Int32Var(&filterByPDG, "filterByPDG", 0, "keep only particles with this PDG code")
	f.Float64Var(&minEnergy, "minEnergy", 0, "keep only particles at or above this kinetic energy (MeV)")
	f.Float64Var(&maxEnergy, "maxEnergy", 0, "keep only particles at or below this kinetic energy (MeV)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildFilter composes the CLI's particle predicates into a single
// function, or nil if none were requested.
func buildFilter(cmd *cobra.Command) func(*particle.Particle) bool {
	var preds []func(*particle.Particle) bool

	if photonsOnly {
		preds = append(preds, func(p *particle.Particle) bool { return p.Type() == particle.Photon })
	}
	if electronsOnly {
		preds = append(preds, func(p *particle.Particle) bool { return p.Type() == particle.Electron })
	}
	if cmd.Flags().Changed("filterByPDG") {
		code := particle.ParticleType(filterByPDG)
		preds = append(preds, func(p *particle.Particle) bool { return p.Type() == code })
	}
	if cmd.Flags().Changed("minEnergy") {
		min := float32(minEnergy)
		preds = append(preds, func(p *particle.Particle) bool { return p.KineticEnergy() >= min })
	}
	if cmd.Flags().Changed("maxEnergy") {
		max := float32(maxEnergy)
		preds = append(preds, func(p *particle.Particle) bool { return p.KineticEnergy() <= max })
	}

	if len(preds) == 0 {
		return nil
	}

	return func(p *particle.Particle) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}

		return true
	}
}

func run(cmd *cobra.Command, args []string) {
	if showFormats {
		cliutil.PrintFormats(os.Stdout)
		return
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "error: exactly two positional arguments <in> <out> are required")
		os.Exit(1)
	}
	inPath, outPath := args[0], args[1]
	if inPath == outPath {
		fmt.Fprintln(os.Stderr, "error: input and output paths must differ")
		os.Exit(1)
	}

	collector := &cliutil.Collector{}
	filter := buildFilter(cmd)

	reader, err := registry.OpenReader(inPath, inputFormat, registry.Options{})
	if err != nil {
		cliutil.FatalWrap(os.Stderr, err, "opening "+inPath)
		os.Exit(1)
	}

	writer, err := registry.CreateWriter(outPath, outputFormat, registry.Options{})
	if err != nil {
		cliutil.FatalWrap(os.Stderr, err, "creating "+outPath)
		reader.Close()
		os.Exit(1)
	}

	if preserveConstants {
		writer.SetFixedValues(reader.FixedValues())
	}

	s := cliutil.Spin(fmt.Sprintf("Converting %s -> %s... ", inPath, outPath))

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

		if cmd.Flags().Changed("projectToX") {
			p.ProjectToX(float32(projectToX))
		}
		if cmd.Flags().Changed("projectToY") {
			p.ProjectToY(float32(projectToY))
		}
		if cmd.Flags().Changed("projectToZ") {
			p.ProjectToZ(float32(projectToZ))
		}

		if filter != nil && !filter(&p) {
			if p.IsNewHistory() {
				if err := writer.AddAdditionalHistories(uint64(p.IncrementalHistories())); err != nil {
					collector.AddError(fmt.Errorf("promoting rejected history: %w", err))
				}
			}
			continue
		}

		if err := writer.Write(p); err != nil {
			collector.AddError(fmt.Errorf("writing to %s: %w", outPath, err))
			break
		}
	}

	for _, w := range reader.Warnings() {
		collector.AddWarning(fmt.Sprintf("%s: %s", inPath, w))
	}
	if err := reader.Close(); err != nil {
		collector.AddError(fmt.Errorf("closing %s: %w", inPath, err))
	}
	if err := writer.Close(); err != nil {
		collector.AddError(fmt.Errorf("closing %s: %w", outPath, err))
	}

	s.Stop()
	collector.Report(os.Stderr)

	if collector.HasErrors() || (errorOnWarning && len(collector.Warnings) > 0) {
		os.Exit(1)
	}

	fmt.Printf("Wrote %d particle(s) to %s\n", writer.ParticlesWritten(), outPath)
}
