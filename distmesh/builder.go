package distmesh

import (
	"math/rand"
	"time"

	"github.com/arl/assertgo"
	"github.com/arl/go-distmesh/geom"
	"github.com/arl/go-distmesh/internal/buildlog"
	"github.com/arl/go-distmesh/sdf"
)

// EdgeLenFn is the target edge-length field h(p), evaluated at a bar's
// midpoint.
type EdgeLenFn func(p geom.Point) float64

func unitEdgeLen(geom.Point) float64 { return 1 }

// Builder assembles an Engine from a fluent configuration surface,
// grounded on the teacher's sample/solomesh.Settings consumed by
// sample/solomesh.SoloMesh.New/SetSettings: a plain Settings struct
// plus a builder that owns the non-serializable pieces (the SDF, the
// edge-length closure, the RNG) that Settings itself cannot carry.
// Each chain method returns the same *Builder; nothing is constructed
// until Build is called.
type Builder struct {
	settings Settings

	distFn    sdf.SDF
	edgeLenFn EdgeLenFn
	fixpoints []geom.Point
	rnd       *rand.Rand
	ctx       *buildlog.Context
}

// NewBuilder returns a Builder targeting npoints free interior points,
// with the defaults from NewSettings.
func NewBuilder(npoints int) *Builder {
	b := &Builder{settings: NewSettings()}
	b.settings.NPoints = npoints
	return b
}

// BBox sets the bounding box of the rejection sampler used to
// distribute the initial free points.
func (b *Builder) BBox(x1, y1, x2, y2 float64) *Builder {
	b.settings.X1, b.settings.Y1, b.settings.X2, b.settings.Y2 = x1, y1, x2, y2
	return b
}

// DistFn sets the owned signed distance field. If never called, Build
// defaults to the bounding box itself.
func (b *Builder) DistFn(s sdf.SDF) *Builder {
	b.distFn = s
	return b
}

// EdgeLenFn sets the target edge-length field h(p). If never called,
// Build defaults to the constant field 1.
func (b *Builder) EdgeLenFn(f EdgeLenFn) *Builder {
	b.edgeLenFn = f
	return b
}

// AddFixpoint appends a point exempt from force updates and pushback.
func (b *Builder) AddFixpoint(p geom.Point) *Builder {
	b.fixpoints = append(b.fixpoints, p)
	return b
}

// Bossen selects the Bossen smoothing kernel (the default).
func (b *Builder) Bossen() *Builder {
	b.settings.Kernel = Bossen
	return b
}

// Persson selects the Persson, repulsive-only smoothing kernel.
func (b *Builder) Persson() *Builder {
	b.settings.Kernel = Persson
	return b
}

// VirtualEdges enables the extra hull-triangle force that compensates
// for the missing neighbour beyond the convex hull.
func (b *Builder) VirtualEdges() *Builder {
	b.settings.VirtualEdges = true
	return b
}

// BreakEdges enables adaptive splitting of over-long hull bars.
func (b *Builder) BreakEdges() *Builder {
	b.settings.BreakEdges = true
	return b
}

// Rand sets the injectable uniform generator used for initial point
// placement, so tests can construct a deterministic Engine. If never
// called, Build seeds a generator off the wall clock.
func (b *Builder) Rand(r *rand.Rand) *Builder {
	b.rnd = r
	return b
}

// Context attaches a build log/timer context. A nil context (the
// default) disables logging entirely.
func (b *Builder) Context(ctx *buildlog.Context) *Builder {
	b.ctx = ctx
	return b
}

// Build validates the configuration, distributes and triangulates the
// initial point set, and returns the ready-to-step Engine.
//
// Build asserts x1<x2 and y1<y2; these are configuration errors, fatal
// at construction per spec.md §7, not recoverable runtime conditions.
func (b *Builder) Build() (*Engine, error) {
	assert.True(b.settings.X1 < b.settings.X2, "distmesh.Builder: require x1 < x2")
	assert.True(b.settings.Y1 < b.settings.Y2, "distmesh.Builder: require y1 < y2")

	distFn := b.distFn
	if distFn == nil {
		distFn = sdf.Rect{
			Min: geom.Point{X: b.settings.X1, Y: b.settings.Y1},
			Max: geom.Point{X: b.settings.X2, Y: b.settings.Y2},
		}
	}
	edgeLenFn := b.edgeLenFn
	if edgeLenFn == nil {
		edgeLenFn = unitEdgeLen
	}
	rnd := b.rnd
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	points := distributePoints(b.settings.NPoints, b.settings, distFn, rnd)
	fixed := make([]bool, len(points), len(points)+len(b.fixpoints))
	for _, p := range b.fixpoints {
		points = append(points, p)
		fixed = append(fixed, true)
	}

	e := &Engine{
		Points:       points,
		Fixed:        fixed,
		distFn:       distFn,
		edgeLenFn:    edgeLenFn,
		kernel:       b.settings.Kernel,
		virtualEdges: b.settings.VirtualEdges,
		breakEdges:   b.settings.BreakEdges,
		ctx:          b.ctx,
	}
	e.retriangulate()
	return e, nil
}

// distributePoints rejection-samples n candidates uniformly in the
// builder's bounding box, keeping only those strictly inside distFn's
// domain (distFn(p) < 0).
func distributePoints(n int, s Settings, distFn sdf.SDF, rnd *rand.Rand) []geom.Point {
	points := make([]geom.Point, 0, n)
	w, h := s.X2-s.X1, s.Y2-s.Y1
	for len(points) < n {
		candidate := geom.Point{
			X: s.X1 + rnd.Float64()*w,
			Y: s.Y1 + rnd.Float64()*h,
		}
		if distFn.Distance(candidate) < 0 {
			points = append(points, candidate)
		}
	}
	return points
}
