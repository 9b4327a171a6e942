package distmesh

// Kernel selects the smoothing function used when turning a bar's
// normalized length into a force magnitude.
type Kernel int

const (
	// Bossen is attractive when a bar is longer than its target length
	// and repulsive when shorter: (1-λ⁴)·exp(-λ⁴).
	Bossen Kernel = iota
	// Persson is repulsive-only: max(1-λ, 0).
	Persson
)

// Omega is the compression bias applied to every target edge length,
// nudging the relaxed mesh slightly denser than edgeLenFn alone would
// produce.
const Omega = 1.2

// breakThreshold is the λ value above which a hull bar is split by
// appending its midpoint as a new free point.
const breakThreshold = 2.0

// pushbackEps is the finite-difference step used when projecting a
// point back onto the domain boundary; smaller than the general-query
// default since pushback runs every step and compounds.
const pushbackEps = 1e-6

// Settings is the flat, serializable configuration consumed by
// Builder, mirrored on the teacher's sample/solomesh.Settings /
// recast.Config shape: a plain struct with a defaults constructor,
// kept separate from Builder so it round-trips through YAML (see
// cmd/distmeshgen) without dragging the SDF/edge-length closures along.
type Settings struct {
	NPoints int     `yaml:"npoints"`
	X1      float64 `yaml:"x1"`
	Y1      float64 `yaml:"y1"`
	X2      float64 `yaml:"x2"`
	Y2      float64 `yaml:"y2"`

	Kernel       Kernel `yaml:"kernel"`
	VirtualEdges bool   `yaml:"virtual_edges"`
	BreakEdges   bool   `yaml:"break_edges"`
}

// NewSettings returns the default configuration: a unit bounding box,
// 0 free points, Bossen smoothing, and both optional hull refinements
// disabled.
func NewSettings() Settings {
	return Settings{
		NPoints: 0,
		X1:      0, Y1: 0, X2: 1, Y2: 1,
		Kernel:       Bossen,
		VirtualEdges: false,
		BreakEdges:   false,
	}
}
