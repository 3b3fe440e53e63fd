package topas

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/particlezoo/phsp/particle"
)

// lineScanner wraps a bufio.Scanner to give ParseHeader's section readers
// the same "peek at EOF" ergonomics the original's std::ifstream loops
// relied on.
type lineScanner struct {
	s    *bufio.Scanner
	done bool
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{s: bufio.NewScanner(r)}
}

func (l *lineScanner) next() (string, bool) {
	if l.done {
		return "", false
	}
	if !l.s.Scan() {
		l.done = true
		return "", false
	}
	return l.s.Text(), true
}

func (l *lineScanner) nextNonEmpty() (string, error) {
	for {
		line, ok := l.next()
		if !ok {
			return "", fmt.Errorf("topas: unexpected end of file while reading header")
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, nil
		}
	}
}

func extractNumber(line string) (uint64, error) {
	colon := strings.LastIndex(line, ":")
	if colon < 0 {
		return 0, fmt.Errorf("topas: invalid header line %q", line)
	}
	return strconv.ParseUint(strings.TrimSpace(line[colon+1:]), 10, 64)
}

func extractEnergy(line string) (float64, error) {
	colon := strings.LastIndex(line, ":")
	if colon < 0 {
		return 0, fmt.Errorf("topas: invalid header line %q", line)
	}
	s := strings.TrimSpace(line[colon+1:])
	s = strings.TrimSpace(strings.TrimSuffix(s, "MeV"))
	return strconv.ParseFloat(s, 64)
}

func firstTokenLower(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	tok := strings.TrimRightFunc(fields[0], func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	return strings.ToLower(tok)
}

// ParseHeader reads a TOPAS ".header" sidecar, detecting the sub-variant
// from its first non-empty line exactly as the original does: "$TITLE:"
// means LIMITED, "TOPAS ASCII Phase Space" means ASCII, "TOPAS Binary
// Phase Space" means BINARY.
func ParseHeader(r io.Reader) (*Header, error) {
	ls := newLineScanner(r)
	firstLine, err := ls.nextNonEmpty()
	if err != nil {
		return nil, fmt.Errorf("topas: empty header file")
	}

	switch {
	case strings.Contains(firstLine, "$TITLE:"):
		return parseLimitedHeader(ls)
	case strings.Contains(firstLine, "TOPAS ASCII"):
		return parseStandardHeader(ls, FormatASCII)
	case strings.Contains(firstLine, "TOPAS Binary"):
		return parseStandardHeader(ls, FormatBinary)
	default:
		return nil, fmt.Errorf("topas: unsupported header variant (first line %q)", firstLine)
	}
}

func parseLimitedHeader(ls *lineScanner) (*Header, error) {
	h := NewHeader(FormatLimited)
	for {
		line, ok := ls.next()
		if !ok {
			break
		}
		switch {
		case strings.Contains(line, "$ORIG_HISTORIES:"):
			valLine, ok := ls.next()
			if !ok {
				return nil, fmt.Errorf("topas: truncated limited header")
			}
			n, err := strconv.ParseUint(strings.TrimSpace(valLine), 10, 64)
			if err != nil {
				return nil, err
			}
			h.NumberOfOriginalHistories = n
		case strings.Contains(line, "$PARTICLES:"):
			valLine, ok := ls.next()
			if !ok {
				return nil, fmt.Errorf("topas: truncated limited header")
			}
			n, err := strconv.ParseUint(strings.TrimSpace(valLine), 10, 64)
			if err != nil {
				return nil, err
			}
			h.NumberOfParticles = n
		}
	}
	return h, nil
}

func parseStandardHeader(ls *lineScanner, format Format) (*Header, error) {
	h := NewHeader(format)
	h.Columns = nil

	line, err := ls.nextNonEmpty()
	if err != nil {
		return nil, err
	}
	if h.NumberOfOriginalHistories, err = extractNumber(line); err != nil {
		return nil, err
	}
	if line, err = ls.nextNonEmpty(); err != nil {
		return nil, err
	}
	if h.NumberOfRepresentedHistories, err = extractNumber(line); err != nil {
		return nil, err
	}
	if line, err = ls.nextNonEmpty(); err != nil {
		return nil, err
	}
	if h.NumberOfParticles, err = extractNumber(line); err != nil {
		return nil, err
	}

	if format == FormatBinary {
		if err := readColumnsBinary(ls, h); err != nil {
			return nil, err
		}
	} else {
		if err := readColumnsASCII(ls, h); err != nil {
			return nil, err
		}
	}

	if err := readStatsSections(ls, h); err != nil {
		return nil, err
	}

	return h, nil
}

func readColumnsBinary(ls *lineScanner, h *Header) error {
	foundSection := false
	for {
		line, ok := ls.next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		key := firstTokenLower(trimmed)
		if key == "number" || key == "byte" {
			continue
		}
		if trimmed == "" {
			if foundSection {
				break
			}
			continue
		}
		foundSection = true

		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			return fmt.Errorf("topas: invalid column definition in binary header: %q", trimmed)
		}
		typeField := strings.TrimSpace(trimmed[:colon])
		nameField := strings.TrimSpace(trimmed[colon+1:])

		if len(typeField) < 2 {
			return fmt.Errorf("topas: invalid column type field %q", typeField)
		}
		code := typeField[0]
		size, err := strconv.Atoi(typeField[1:])
		if err != nil {
			return err
		}

		var valueType DataType
		switch code {
		case 'i':
			switch size {
			case 1:
				valueType = DataInt8
			case 4:
				valueType = DataInt32
			default:
				return fmt.Errorf("topas: unsupported integer size %d in binary header", size)
			}
		case 'f':
			switch size {
			case 4:
				valueType = DataFloat32
			case 8:
				valueType = DataFloat64
			default:
				return fmt.Errorf("topas: unsupported float size %d in binary header", size)
			}
		case 'b':
			valueType = DataBool
		default:
			return fmt.Errorf("topas: unsupported value type code %q in binary header", string(code))
		}

		col, err := NewDataColumnFromBinaryEntry(nameField, valueType)
		if err != nil {
			return err
		}
		h.AddColumn(col)
	}
	return nil
}

func readColumnsASCII(ls *lineScanner, h *Header) error {
	foundSection := false
	for {
		line, ok := ls.next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if firstTokenLower(trimmed) == "columns" {
			continue
		}
		if trimmed == "" {
			if foundSection {
				break
			}
			continue
		}
		foundSection = true

		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			return fmt.Errorf("topas: invalid column definition in ASCII header: %q", trimmed)
		}
		name := strings.TrimSpace(trimmed[colon+1:])
		col, err := NewDataColumnFromName(name)
		if err != nil {
			return err
		}
		h.AddColumn(col)
	}
	return nil
}

func readStatsSections(ls *lineScanner, h *Header) error {
	// particle counts
	for {
		line, ok := ls.next()
		if !ok {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if !strings.Contains(line, "Number of ") {
			return fmt.Errorf("topas: invalid particle count line: %q", line)
		}
		name := strings.TrimSpace(line[len("Number of "):strings.Index(line, ":")])
		count, err := extractNumber(line)
		if err != nil {
			return err
		}
		t := typeForStatsName(name)
		stats, ok := h.Stats[t]
		if !ok {
			stats = newParticleStats()
			h.Stats[t] = stats
		}
		stats.Count += count
	}

	// minimum kinetic energies
	for {
		line, ok := ls.next()
		if !ok {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if !strings.Contains(line, "Minimum Kinetic Energy of ") {
			return fmt.Errorf("topas: invalid minimum kinetic energy line: %q", line)
		}
		name := strings.TrimSpace(line[len("Minimum Kinetic Energy of "):strings.Index(line, ":")])
		energy, err := extractEnergy(line)
		if err != nil {
			return err
		}
		t := typeForStatsName(name)
		stats, ok := h.Stats[t]
		if !ok {
			stats = newParticleStats()
			h.Stats[t] = stats
		}
		if energy < stats.MinKineticEnergy {
			stats.MinKineticEnergy = energy
		}
	}

	// maximum kinetic energies
	for {
		line, ok := ls.next()
		if !ok {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if !strings.Contains(line, "Maximum Kinetic Energy of ") {
			return fmt.Errorf("topas: invalid maximum kinetic energy line: %q", line)
		}
		name := strings.TrimSpace(line[len("Maximum Kinetic Energy of "):strings.Index(line, ":")])
		energy, err := extractEnergy(line)
		if err != nil {
			return err
		}
		t := typeForStatsName(name)
		stats, ok := h.Stats[t]
		if !ok {
			stats = newParticleStats()
			h.Stats[t] = stats
		}
		if energy > stats.MaxKineticEnergy {
			stats.MaxKineticEnergy = energy
		}
	}

	return nil
}

func typeForStatsName(name string) particle.ParticleType {
	if t, ok := particle.ByName(name); ok {
		return t
	}
	return particle.Unsupported
}

// sortedStatsTypes returns the header's stats keys in ascending PDG-code
// order, for deterministic rendering.
func sortedStatsTypes(h *Header) []particle.ParticleType {
	types := make([]particle.ParticleType, 0, len(h.Stats))
	for t := range h.Stats {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Render writes the header in its own sub-variant's text format.
func (h *Header) Render() string {
	switch h.Format {
	case FormatLimited:
		return h.renderLimited()
	case FormatBinary:
		return h.renderStandard("TOPAS Binary Phase Space", true)
	default:
		return h.renderStandard("TOPAS ASCII Phase Space", false)
	}
}

func (h *Header) renderLimited() string {
	var b strings.Builder
	fmt.Fprintln(&b, "$TITLE:")
	fmt.Fprintln(&b, "TOPAS Phase Space in \"limited\" format. Should only be used when it is necessary to read or write from restrictive older codes.")
	fmt.Fprintln(&b, "$RECORD_CONTENTS:")
	fmt.Fprintln(&b, "    1     // X is stored ?")
	fmt.Fprintln(&b, "    1     // Y is stored ?")
	fmt.Fprintln(&b, "    1     // Z is stored ?")
	fmt.Fprintln(&b, "    1     // U is stored ?")
	fmt.Fprintln(&b, "    1     // V is stored ?")
	fmt.Fprintln(&b, "    1     // W is stored ?")
	fmt.Fprintln(&b, "    1     // Weight is stored ?")
	fmt.Fprintln(&b, "    0     // Extra floats stored ?")
	fmt.Fprintln(&b, "    0     // Extra longs stored ?")
	fmt.Fprintln(&b, "$RECORD_LENGTH:")
	fmt.Fprintln(&b, limitedRecordLength)
	fmt.Fprintln(&b, "$ORIG_HISTORIES:")
	fmt.Fprintln(&b, h.NumberOfOriginalHistories)
	fmt.Fprintln(&b, "$PARTICLES:")
	fmt.Fprintln(&b, h.NumberOfParticles)
	fmt.Fprintln(&b, "$EXTRA_FLOATS:")
	fmt.Fprintln(&b, "0")
	fmt.Fprintln(&b, "$EXTRA_INTS:")
	fmt.Fprintln(&b, "0")
	return b.String()
}

func (h *Header) renderStandard(banner string, binary bool) string {
	var b strings.Builder
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Number of Original Histories: %d\n", h.NumberOfOriginalHistories)
	fmt.Fprintf(&b, "Number of Original Histories that Reached Phase Space: %d\n", h.NumberOfRepresentedHistories)
	fmt.Fprintf(&b, "Number of Scored Particles: %d\n", h.NumberOfParticles)
	fmt.Fprintln(&b)

	if binary {
		fmt.Fprintf(&b, "Number of Bytes per Particle: %d\n", h.RecordLength())
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Byte order of each record is as follows:")
		for _, c := range h.Columns {
			if c.ValueType == DataString {
				continue
			}
			var code string
			switch c.ValueType {
			case DataInt8, DataInt32:
				code = "i"
			case DataFloat32, DataFloat64:
				code = "f"
			case DataBool:
				code = "b"
			}
			fmt.Fprintf(&b, "%s%d: %s\n", code, c.sizeOf(), c.Name)
		}
	} else {
		fmt.Fprintln(&b, "Columns of data are as follows:")
		for i, c := range h.Columns {
			fmt.Fprintf(&b, "%d: %s\n", i+1, c.Name)
		}
	}
	fmt.Fprintln(&b)

	for _, t := range sortedStatsTypes(h) {
		fmt.Fprintf(&b, "Number of %s: %d\n", t.String(), h.Stats[t].Count)
	}
	fmt.Fprintln(&b)
	for _, t := range sortedStatsTypes(h) {
		fmt.Fprintf(&b, "Minimum Kinetic Energy of %s: %g MeV\n", t.String(), h.Stats[t].MinKineticEnergy)
	}
	fmt.Fprintln(&b)
	for _, t := range sortedStatsTypes(h) {
		fmt.Fprintf(&b, "Maximum Kinetic Energy of %s: %g MeV\n", t.String(), h.Stats[t].MaxKineticEnergy)
	}

	return b.String()
}
