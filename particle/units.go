package particle

// Base units. Internal particle fields are always expressed in these
// units: positions in centimeters, energies in MeV. A codec reading a
// wire format expressed in other units (penEasy's ASCII records are in
// eV, for instance) scales on the way in and out rather than changing
// what a Particle's fields mean.
const (
	CM  float32 = 1.0
	MeV float32 = 1.0
)

// Length units, scaled relative to CM.
const (
	KM       float32 = 1000 * CM
	M        float32 = 100 * CM
	MM       float32 = 0.1 * CM
	UM       float32 = 1e-4 * CM
	NM       float32 = 1e-7 * CM
	Angstrom float32 = 1e-8 * CM
	Inch     float32 = 2.54 * CM
)

// Energy units, scaled relative to MeV.
const (
	EV  float32 = 1e-6 * MeV
	KeV float32 = 1e-3 * MeV
	GeV float32 = 1e3 * MeV
	TeV float32 = 1e6 * MeV
)

// ElectronRestMass is the rest mass of an electron or positron in MeV,
// used by codecs (EGS in particular) that store total energy on the
// wire and need it converted to kinetic energy on read, or back on
// write.
const ElectronRestMass float32 = 0.51099895
