package render_test

import (
	"io"
	"os"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"

	"github.com/purefab/solid/form3"
	"github.com/purefab/solid/form3/must3"
	"github.com/purefab/solid/internal/d3"
	"github.com/purefab/solid/profile"
	"github.com/purefab/solid/render"
)

const (
	// imgDelta a normalized imgDelta parameter to describe how close the matching
	// should be performed (imgDelta=0: perfect match, imgDelta=1, loose match)
	imgDelta = 0
	cells    = 100
)

type viewConfig struct {
	// what position (point) to look at
	lookat r3.Vec
	// which way is up (direction)
	up r3.Vec
	// where the camera/eye located at (point)
	eyepos r3.Vec
	far    float64
	near   float64
}

func BenchmarkRoundedCylinder(b *testing.B) {
	defer os.Remove("knob_bench.stl")
	for i := 0; i < b.N; i++ {
		knobToSTL(b, "knob_bench.stl")
	}
}

// The render pipeline must be deterministic: meshing the same solid
// twice and rasterizing both meshes yields identical images.
func TestRenderDeterministic(t *testing.T) {
	view := viewConfig{
		up:     r3.Vec{Z: 1},
		eyepos: d3.Elem(3),
		near:   1,
		far:    10,
	}
	for _, test := range []struct {
		name     string
		formFunc func(t testing.TB, stlpath string)
	}{
		{name: "knob", formFunc: knobToSTL},
		{name: "plate", formFunc: plateToSTL},
	} {
		stlA := "test_" + test.name + "_a.stl"
		stlB := "test_" + test.name + "_b.stl"
		pngA := "test_" + test.name + "_a.png"
		pngB := "test_" + test.name + "_b.png"
		test.formFunc(t, stlA)
		test.formFunc(t, stlB)
		stlToPNG(t, stlA, pngA, view)
		stlToPNG(t, stlB, pngB, view)
		if !equalImages(t, pngA, pngB) {
			t.Errorf("%s renders of identical solids differ", test.name)
		}
		if !t.Failed() {
			// If test has not failed we remove the generated STL and PNG files.
			os.Remove(stlA)
			os.Remove(stlB)
			os.Remove(pngA)
			os.Remove(pngB)
		}
	}
}

func knobToSTL(t testing.TB, filename string) {
	object, err := form3.RoundedCylinder(10, 14, 2, 4, false, profile.Tolerances{})
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(filename, render.NewMarchingCubesUniform(object, cells))
	if err != nil {
		t.Fatal(err)
	}
}

func plateToSTL(t testing.TB, filename string) {
	section := profile.Profile{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: 3}}
	object, err := form3.BoxWrap(must3.BoxWrapParams{
		Size:    r3.Vec{X: 20, Y: 12},
		Profile: section,
		Fill:    true,
		Epsilon: 0.05,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(filename, render.NewMarchingCubesUniform(object, cells))
	if err != nil {
		t.Fatal(err)
	}
}

func stlToPNG(t testing.TB, stlName, outputname string, view viewConfig) {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	const (
		width, height = 1280, 720 // output width and height in pixels
		scale         = 1         // optional supersampling
		fovy          = 30        // vertical field of view in degrees
	)

	var (
		far    = view.far
		near   = view.near
		eye    = fauxgl.V(view.eyepos.X, view.eyepos.Y, view.eyepos.Z) // camera position
		center = fauxgl.V(view.lookat.X, view.lookat.Y, view.lookat.Z) // view center position
		up     = fauxgl.V(view.up.X, view.up.Y, view.up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	err = fauxgl.SavePNG(outputname, image)
	if err != nil {
		t.Fatal(err)
	}
}

func equalImages(t *testing.T, png1, png2 string) bool {
	fp1, err := os.Open(png1)
	if err != nil {
		t.Fatal(err)
	}
	defer fp1.Close()
	fp2, err := os.Open(png2)
	if err != nil {
		t.Fatal(err)
	}
	defer fp2.Close()
	b1, err := io.ReadAll(fp1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := io.ReadAll(fp2)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}
