package egs

import "github.com/particlezoo/phsp/particle"

// LATCHOption selects how the LATCH bit field's secondary-particle bits
// (24-28) are interpreted, matching EGSnrc's own three documented LATCH
// conventions.
type LATCHOption int

const (
	// LatchOption1 is the non-inherited setting: bits 1-23 record where the
	// particle has been; no secondary-particle information is stored.
	LatchOption1 LATCHOption = 1
	// LatchOption2 is the comprehensive (default) setting: bits 1-23 record
	// where the particle has been, and bit settings are inherited from
	// parent particles.
	LatchOption2 LATCHOption = 2
	// LatchOption3 records where the particle has interacted (rather than
	// been) in bits 1-23, also with inheritance.
	LatchOption3 LATCHOption = 3
)

// ApplyLATCH decodes the packed LATCH word onto a particle's EGS_LATCH,
// IS_MULTIPLE_CROSSER, and (for options 2/3) IS_SECONDARY_PARTICLE
// properties.
func ApplyLATCH(p *particle.Particle, latch uint32, opt LATCHOption) {
	p.SetIntProperty(particle.EGS_LATCH, int32(latch))

	isMultiPasser := (latch>>31)&1 == 1
	p.SetBoolProperty(particle.IS_MULTIPLE_CROSSER, isMultiPasser)

	switch opt {
	case LatchOption2, LatchOption3:
		secondaryBits := (latch >> 24) & 0x1F
		p.SetBoolProperty(particle.IS_SECONDARY_PARTICLE, secondaryBits != 0)
	}
}

// ExtractLATCH builds the packed LATCH word for a particle being written:
// an existing EGS_LATCH property is reused verbatim if present, otherwise
// one is constructed from the particle's charge and secondary-particle
// properties.
func ExtractLATCH(p *particle.Particle, opt LATCHOption) uint32 {
	if v, ok := p.IntProperty(particle.EGS_LATCH); ok {
		return uint32(v)
	}

	var latch uint32
	switch p.Type() {
	case particle.Photon:
		latch |= 0 << 29
	case particle.Electron:
		latch |= 1 << 29
	case particle.Positron:
		latch |= 2 << 29
	}

	if v, ok := p.BoolProperty(particle.IS_MULTIPLE_CROSSER); ok && v {
		latch |= 1 << 31
	}

	switch opt {
	case LatchOption2, LatchOption3:
		if v, ok := p.BoolProperty(particle.IS_SECONDARY_PARTICLE); ok && v {
			latch |= 1 << 24
		}
	}

	return latch
}

// PassesLATCHFilter reports whether a particle's LATCH value matches every
// bit set in mask, the bitmask convention EGS-latch-filter uses.
func PassesLATCHFilter(p *particle.Particle, mask uint32) bool {
	v, ok := p.IntProperty(particle.EGS_LATCH)
	if !ok {
		return false
	}

	return uint32(v)&mask == mask
}

// LATCHFilter returns a Reader particle filter (for phsp.WithParticleFilter)
// that keeps only particles whose LATCH value matches every bit of mask.
func LATCHFilter(mask uint32) func(*particle.Particle) bool {
	return func(p *particle.Particle) bool { return PassesLATCHFilter(p, mask) }
}
