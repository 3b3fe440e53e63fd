package particle

// IntPropertyType enumerates the standardized integer-valued properties a
// codec can attach to a Particle. Each catalogued MC code contributes the
// properties its own records carry; CUSTOM is the escape hatch for a
// codec-specific value with no catalogued meaning.
type IntPropertyType int

const (
	INVALID_INT IntPropertyType = iota
	// INCREMENTAL_HISTORY_NUMBER is the count of new histories this record
	// represents the start of, when more than one.
	INCREMENTAL_HISTORY_NUMBER
	// EGS_LATCH is the packed bit field EGS codes store per BEAMnrc's LATCH
	// variable: multiple-crossing flag, charge, and region/interaction bits.
	EGS_LATCH
	// PENELOPE_ILB1 is the particle's generation: 1 for a primary, 2+ for
	// successive generations of secondaries.
	PENELOPE_ILB1
	// PENELOPE_ILB2 is the PENELOPE particle type of this particle's parent,
	// meaningful only when PENELOPE_ILB1 > 1.
	PENELOPE_ILB2
	// PENELOPE_ILB3 is the interaction type that created this particle,
	// meaningful only when PENELOPE_ILB1 > 1.
	PENELOPE_ILB3
	// PENELOPE_ILB4 is nonzero when the particle was created by atomic
	// relaxation, identifying the transition.
	PENELOPE_ILB4
	// PENELOPE_ILB5 is a user-defined value propagated to all descendants.
	PENELOPE_ILB5
	// CUSTOM_INT is the sink for a codec-specific integer property with no
	// catalogued meaning; a Particle may carry more than one by using the
	// anonymous custom-int sequence instead of this keyed slot.
	CUSTOM_INT
)

// FloatPropertyType enumerates the standardized float-valued properties a
// codec can attach to a Particle.
type FloatPropertyType int

const (
	INVALID_FLOAT FloatPropertyType = iota
	// XLAST is, for a photon, the X position of its last interaction; for a
	// charged particle, the X position at which it (or an ancestor) was
	// created by a photon.
	XLAST
	// YLAST is the Y-axis counterpart of XLAST.
	YLAST
	// ZLAST is the Z-axis counterpart of XLAST.
	ZLAST
	// CUSTOM_FLOAT is the sink for a codec-specific float property with no
	// catalogued meaning.
	CUSTOM_FLOAT
)

// BoolPropertyType enumerates the standardized boolean flags a codec can
// attach to a Particle.
type BoolPropertyType int

const (
	INVALID_BOOL BoolPropertyType = iota
	// IS_MULTIPLE_CROSSER flags a particle that crossed the scoring plane
	// more than once, assuming a planar phase space.
	IS_MULTIPLE_CROSSER
	// IS_SECONDARY_PARTICLE flags a particle produced by an interaction
	// rather than being a primary source particle.
	IS_SECONDARY_PARTICLE
	// CUSTOM_BOOL is the sink for a codec-specific boolean property with no
	// catalogued meaning.
	CUSTOM_BOOL
)

// customProperties is the backing store for a Particle's typed property
// bags: one slice of (type, value) pairs per scalar kind, indexed by a
// lookup map, plus four anonymous custom sequences for values with no
// catalogued key at all.
//
// A bag only grows when a property is actually set; a freshly constructed
// Particle carries no allocated storage.
type customProperties struct {
	intTypes   []IntPropertyType
	intValues  []int32
	intIndex   map[IntPropertyType]int

	floatTypes  []FloatPropertyType
	floatValues []float32
	floatIndex  map[FloatPropertyType]int

	boolTypes  []BoolPropertyType
	boolValues []bool
	boolIndex  map[BoolPropertyType]int

	customInts    []int32
	customFloats  []float32
	customBools   []bool
	customStrings []string
}

func (c *customProperties) getInt(t IntPropertyType) (int32, bool) {
	if c.intIndex == nil {
		return 0, false
	}
	i, ok := c.intIndex[t]
	if !ok {
		return 0, false
	}

	return c.intValues[i], true
}

func (c *customProperties) setInt(t IntPropertyType, v int32) {
	if c.intIndex == nil {
		c.intIndex = make(map[IntPropertyType]int)
	}
	if i, ok := c.intIndex[t]; ok {
		c.intValues[i] = v

		return
	}
	c.intIndex[t] = len(c.intValues)
	c.intTypes = append(c.intTypes, t)
	c.intValues = append(c.intValues, v)
}

func (c *customProperties) getFloat(t FloatPropertyType) (float32, bool) {
	if c.floatIndex == nil {
		return 0, false
	}
	i, ok := c.floatIndex[t]
	if !ok {
		return 0, false
	}

	return c.floatValues[i], true
}

func (c *customProperties) setFloat(t FloatPropertyType, v float32) {
	if c.floatIndex == nil {
		c.floatIndex = make(map[FloatPropertyType]int)
	}
	if i, ok := c.floatIndex[t]; ok {
		c.floatValues[i] = v

		return
	}
	c.floatIndex[t] = len(c.floatValues)
	c.floatTypes = append(c.floatTypes, t)
	c.floatValues = append(c.floatValues, v)
}

func (c *customProperties) getBool(t BoolPropertyType) (bool, bool) {
	if c.boolIndex == nil {
		return false, false
	}
	i, ok := c.boolIndex[t]
	if !ok {
		return false, false
	}

	return c.boolValues[i], true
}

func (c *customProperties) setBool(t BoolPropertyType, v bool) {
	if c.boolIndex == nil {
		c.boolIndex = make(map[BoolPropertyType]int)
	}
	if i, ok := c.boolIndex[t]; ok {
		c.boolValues[i] = v

		return
	}
	c.boolIndex[t] = len(c.boolValues)
	c.boolTypes = append(c.boolTypes, t)
	c.boolValues = append(c.boolValues, v)
}

// HasIntProperty reports whether p carries the given integer property.
func (p *Particle) HasIntProperty(t IntPropertyType) bool {
	_, ok := p.props.getInt(t)

	return ok
}

// HasFloatProperty reports whether p carries the given float property.
func (p *Particle) HasFloatProperty(t FloatPropertyType) bool {
	_, ok := p.props.getFloat(t)

	return ok
}

// HasBoolProperty reports whether p carries the given boolean property.
func (p *Particle) HasBoolProperty(t BoolPropertyType) bool {
	_, ok := p.props.getBool(t)

	return ok
}

// IntProperty returns the value of the given integer property and whether
// it was set. Unlike the original C++ getter, a missing property reports
// ok=false rather than panicking; callers that want the original's
// fail-fast behavior can ignore ok and use the zero value, or check
// HasIntProperty first.
func (p *Particle) IntProperty(t IntPropertyType) (int32, bool) { return p.props.getInt(t) }

// FloatProperty returns the value of the given float property and whether
// it was set.
func (p *Particle) FloatProperty(t FloatPropertyType) (float32, bool) { return p.props.getFloat(t) }

// BoolProperty returns the value of the given boolean property and
// whether it was set.
func (p *Particle) BoolProperty(t BoolPropertyType) (bool, bool) { return p.props.getBool(t) }

// SetIntProperty sets the value of an integer property, creating it if
// absent.
func (p *Particle) SetIntProperty(t IntPropertyType, v int32) { p.props.setInt(t, v) }

// SetFloatProperty sets the value of a float property, creating it if
// absent.
func (p *Particle) SetFloatProperty(t FloatPropertyType, v float32) { p.props.setFloat(t, v) }

// SetBoolProperty sets the value of a boolean property, creating it if
// absent.
func (p *Particle) SetBoolProperty(t BoolPropertyType, v bool) { p.props.setBool(t, v) }

// NumIntProperties returns the number of distinct integer properties set.
func (p *Particle) NumIntProperties() int { return len(p.props.intValues) }

// NumFloatProperties returns the number of distinct float properties set.
func (p *Particle) NumFloatProperties() int { return len(p.props.floatValues) }

// NumBoolProperties returns the number of distinct boolean properties set.
func (p *Particle) NumBoolProperties() int { return len(p.props.boolValues) }

// AddCustomInt appends a value to the particle's anonymous custom integer
// sequence, for formats that attach more codec-specific integers than the
// catalogued CUSTOM_INT slot can hold.
func (p *Particle) AddCustomInt(v int32) { p.props.customInts = append(p.props.customInts, v) }

// AddCustomFloat appends a value to the particle's anonymous custom float
// sequence.
func (p *Particle) AddCustomFloat(v float32) { p.props.customFloats = append(p.props.customFloats, v) }

// AddCustomBool appends a value to the particle's anonymous custom
// boolean sequence.
func (p *Particle) AddCustomBool(v bool) { p.props.customBools = append(p.props.customBools, v) }

// AddCustomString appends a value to the particle's anonymous custom
// string sequence.
func (p *Particle) AddCustomString(v string) {
	p.props.customStrings = append(p.props.customStrings, v)
}

// CustomInts returns the particle's anonymous custom integer sequence.
func (p *Particle) CustomInts() []int32 { return p.props.customInts }

// CustomFloats returns the particle's anonymous custom float sequence.
func (p *Particle) CustomFloats() []float32 { return p.props.customFloats }

// CustomBools returns the particle's anonymous custom boolean sequence.
func (p *Particle) CustomBools() []bool { return p.props.customBools }

// CustomStrings returns the particle's anonymous custom string sequence.
func (p *Particle) CustomStrings() []string { return p.props.customStrings }
