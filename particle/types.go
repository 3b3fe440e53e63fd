// Package particle defines the in-memory particle record shared by every
// phase-space codec: particle species, kinematics, statistical weight, and
// the three typed property bags (int/float/bool) each format's decoder
// populates from its own wire representation.
package particle

import "math"

// Particle is a single phase-space record: a particle species crossing a
// scoring plane with a given kinetic energy, position, direction, and
// statistical weight, plus whatever format-specific properties its
// originating codec attached.
//
// Direction cosines are normalized to a unit vector on construction and
// whenever Normalize is called explicitly; Particle does not normalize on
// every setter call, since codecs often set px/py/pz independently while
// decoding a record and an intermediate state need not be a unit vector.
type Particle struct {
	particleType ParticleType
	kineticEnergy float32
	x, y, z       float32
	u, v, w       float32
	isNewHistory  bool
	weight        float32

	props customProperties
}

// New constructs a Particle and normalizes its direction cosines to a
// unit vector. Weight defaults are the caller's responsibility; there is
// no implicit weight of 1 because several formats store zero-weight
// placeholder records deliberately.
func New(particleType ParticleType, kineticEnergy, x, y, z, u, v, w float32, isNewHistory bool, weight float32) *Particle {
	p := &Particle{
		particleType:  particleType,
		kineticEnergy: kineticEnergy,
		x:             x,
		y:             y,
		z:             z,
		u:             u,
		v:             v,
		w:             w,
		isNewHistory:  isNewHistory,
		weight:        weight,
	}
	p.Normalize()

	return p
}

// Normalize rescales the direction cosines to a unit vector. It is a
// no-op if the vector is already unit length or is the zero vector
// (which a few formats use transiently for pseudo-particle records).
func (p *Particle) Normalize() {
	mag2 := p.u*p.u + p.v*p.v + p.w*p.w
	if mag2 == 0 || mag2 == 1 {
		return
	}
	mag := float32(math.Sqrt(float64(mag2)))
	p.u /= mag
	p.v /= mag
	p.w /= mag
}

// Type returns the particle's species.
func (p *Particle) Type() ParticleType { return p.particleType }

// SetType changes the particle's species.
func (p *Particle) SetType(t ParticleType) { p.particleType = t }

// PDGCode returns the particle's PDG Monte Carlo numbering scheme code.
func (p *Particle) PDGCode() int32 { return p.particleType.PDGCode() }

// KineticEnergy returns the particle's kinetic energy in MeV.
func (p *Particle) KineticEnergy() float32 { return p.kineticEnergy }

// SetKineticEnergy sets the particle's kinetic energy in MeV.
func (p *Particle) SetKineticEnergy(e float32) { p.kineticEnergy = e }

// X returns the particle's X coordinate in cm.
func (p *Particle) X() float32 { return p.x }

// Y returns the particle's Y coordinate in cm.
func (p *Particle) Y() float32 { return p.y }

// Z returns the particle's Z coordinate in cm.
func (p *Particle) Z() float32 { return p.z }

// SetX sets the particle's X coordinate in cm.
func (p *Particle) SetX(x float32) { p.x = x }

// SetY sets the particle's Y coordinate in cm.
func (p *Particle) SetY(y float32) { p.y = y }

// SetZ sets the particle's Z coordinate in cm.
func (p *Particle) SetZ(z float32) { p.z = z }

// U returns the X component of the particle's direction cosine.
func (p *Particle) U() float32 { return p.u }

// V returns the Y component of the particle's direction cosine.
func (p *Particle) V() float32 { return p.v }

// W returns the Z component of the particle's direction cosine.
func (p *Particle) W() float32 { return p.w }

// SetU sets the X component of the particle's direction cosine. Callers
// that set all three components individually should call Normalize
// afterward.
func (p *Particle) SetU(u float32) { p.u = u }

// SetV sets the Y component of the particle's direction cosine.
func (p *Particle) SetV(v float32) { p.v = v }

// SetW sets the Z component of the particle's direction cosine.
func (p *Particle) SetW(w float32) { p.w = w }

// Weight returns the particle's statistical weight.
func (p *Particle) Weight() float32 { return p.weight }

// SetWeight sets the particle's statistical weight.
func (p *Particle) SetWeight(w float32) { p.weight = w }

// IsNewHistory reports whether this particle starts a new Monte Carlo
// history rather than continuing the previous one.
func (p *Particle) IsNewHistory() bool { return p.isNewHistory }

// SetNewHistory sets whether this particle starts a new history.
func (p *Particle) SetNewHistory(v bool) { p.isNewHistory = v }

// IncrementalHistories returns the number of histories this particle
// represents the start of. Most records start at most one history; a
// format that compresses runs of empty histories into a single record
// (TOPAS's pseudo-particle, EGS's packed history counter) sets
// INCREMENTAL_HISTORY_NUMBER to report more than one. If the particle
// is not a new history this is 0; if it is a new history with no such
// property set, it defaults to 1.
func (p *Particle) IncrementalHistories() uint32 {
	if !p.isNewHistory {
		return 0
	}
	if v, ok := p.props.getInt(INCREMENTAL_HISTORY_NUMBER); ok {
		return uint32(v)
	}

	return 1
}

// SetIncrementalHistories marks the particle as a new history and
// records how many histories it represents the start of. n must be
// greater than zero; callers representing zero new histories should
// leave IsNewHistory false instead.
func (p *Particle) SetIncrementalHistories(n uint32) {
	p.isNewHistory = true
	p.props.setInt(INCREMENTAL_HISTORY_NUMBER, int32(n))
}

// ProjectToX moves the particle in a straight line until it reaches the
// given X coordinate, updating Y and Z accordingly. It reports false
// (leaving the particle unchanged) if the particle's direction has
// negligible X component.
func (p *Particle) ProjectToX(target float32) bool {
	if p.x == target {
		return true
	}
	if abs32(p.u) < 1e-6 {
		return false
	}
	t := (target - p.x) / p.u
	p.x = target
	p.y += p.v * t
	p.z += p.w * t

	return true
}

// ProjectToY moves the particle in a straight line until it reaches the
// given Y coordinate, updating X and Z accordingly.
func (p *Particle) ProjectToY(target float32) bool {
	if p.y == target {
		return true
	}
	if abs32(p.v) < 1e-6 {
		return false
	}
	t := (target - p.y) / p.v
	p.y = target
	p.x += p.u * t
	p.z += p.w * t

	return true
}

// ProjectToZ moves the particle in a straight line until it reaches the
// given Z coordinate, updating X and Y accordingly.
func (p *Particle) ProjectToZ(target float32) bool {
	if p.z == target {
		return true
	}
	if abs32(p.w) < 1e-6 {
		return false
	}
	t := (target - p.z) / p.w
	p.z = target
	p.x += p.u * t
	p.y += p.v * t

	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}

// FixedValues declares which of the seven scalar axes (position,
// direction, weight) are constant across every particle in a phase-space
// file. A writer configured with FixedValues omits the constant columns
// from each record and stores the constant once in the header; a reader
// restores them onto every decoded Particle.
type FixedValues struct {
	XConstant, YConstant, ZConstant          bool
	UConstant, VConstant, WConstant          bool
	WeightConstant                           bool
	ConstantX, ConstantY, ConstantZ          float32
	ConstantU, ConstantV, ConstantW          float32
	ConstantWeight                           float32
}

// Apply overwrites the constant axes of p with the values fixed in fv,
// leaving non-constant axes untouched. A reader calls this after
// decoding the variable fields of a record.
func (fv FixedValues) Apply(p *Particle) {
	if fv.XConstant {
		p.x = fv.ConstantX
	}
	if fv.YConstant {
		p.y = fv.ConstantY
	}
	if fv.ZConstant {
		p.z = fv.ConstantZ
	}
	if fv.UConstant {
		p.u = fv.ConstantU
	}
	if fv.VConstant {
		p.v = fv.ConstantV
	}
	if fv.WConstant {
		p.w = fv.ConstantW
	}
	if fv.WeightConstant {
		p.weight = fv.ConstantWeight
	}
}
