package render

import (
	"io"

	sdfxrender "github.com/deadsy/sdfx/render"
	sdfxsdf "github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid"
	"github.com/purefab/solid/internal/d3"
)

// defaultCells is the fallback marching cubes resolution along the
// longest bounding box axis.
const defaultCells = 200

// MarchingCubes renders a solid to triangles with the sdfx marching
// cubes meshers. The mesh is generated on the first call to
// ReadTriangles and streamed from a buffer after that.
type MarchingCubes struct {
	s      solid.Solid3
	mesher sdfxrender.Render3
	meshed bool
	// triangles is the total mesh size once meshed.
	triangles int
	buf       triangle3Buffer
}

var _ Renderer = (*MarchingCubes)(nil)

// NewMarchingCubesUniform returns a marching cubes Renderer over a
// uniform grid of cells along the longest axis of the solid's bounds.
func NewMarchingCubesUniform(s solid.Solid3, cells int) *MarchingCubes {
	if cells <= 0 {
		cells = defaultCells
	}
	return &MarchingCubes{
		s:      s,
		mesher: sdfxrender.NewMarchingCubesUniform(cells),
	}
}

// NewMarchingCubesOctree returns a marching cubes Renderer that
// subdivides an octree over the solid's bounds. It resolves small
// features better than the uniform grid at the same cell count.
func NewMarchingCubesOctree(s solid.Solid3, meshCells int) *MarchingCubes {
	if meshCells <= 0 {
		meshCells = defaultCells
	}
	return &MarchingCubes{
		s:      s,
		mesher: sdfxrender.NewMarchingCubesOctree(meshCells),
	}
}

// ReadTriangles reads triangles from the rendered mesh into t until
// the mesh is exhausted, when it returns io.EOF.
func (m *MarchingCubes) ReadTriangles(t []Triangle3) (int, error) {
	if !m.meshed {
		m.mesh()
	}
	if m.buf.Len() == 0 {
		return 0, io.EOF
	}
	return m.buf.Read(t), nil
}

func (m *MarchingCubes) mesh() {
	tris := sdfxrender.ToTriangles(sdfxSolid{s: m.s}, m.mesher)
	out := make([]Triangle3, len(tris))
	for i, tri := range tris {
		for j := 0; j < 3; j++ {
			out[i].V[j] = r3.Vec{X: tri[j].X, Y: tri[j].Y, Z: tri[j].Z}
		}
	}
	m.triangles = len(out)
	m.buf.Write(out)
	m.meshed = true
}

// sdfxSolid adapts a solid.Solid3 to the sdfx sdf.SDF3 interface.
type sdfxSolid struct {
	s solid.Solid3
}

var _ sdfxsdf.SDF3 = sdfxSolid{}

func (a sdfxSolid) Evaluate(p v3.Vec) float64 {
	return a.s.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

func (a sdfxSolid) BoundingBox() sdfxsdf.Box3 {
	// Solid bounds are tight. Grow them so the sampled grid always
	// straddles the surface, otherwise faces flush with the bounds
	// mesh with open cracks.
	bb := d3.Box(a.s.Bounds()).ScaleAboutCenter(1.01)
	return sdfxsdf.Box3{
		Min: v3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: v3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}
