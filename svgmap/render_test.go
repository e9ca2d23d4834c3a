package svgmap_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymap/geom"
	"github.com/katalvlaran/polymap/planar"
	"github.com/katalvlaran/polymap/svgmap"
	"github.com/katalvlaran/polymap/world"
)

func smallWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(world.Config{
		Sites:           80,
		Territories:     3,
		Bounds:          geom.R(0, 0, 600, 400),
		Seed:            7,
		RelaxIterations: 5,
		Epsilon:         planar.DefaultEpsilon,
	})
	require.NoError(t, err)
	return w
}

func TestRender_Layers(t *testing.T) {
	w := smallWorld(t)
	var buf bytes.Buffer
	require.NoError(t, svgmap.Render(&buf, w, svgmap.WithScale(0.5), svgmap.WithSites(true)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="300"`)
	assert.Contains(t, out, `height="200"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	for _, id := range []string{"tiles", "borders", "labels", "sites"} {
		assert.Contains(t, out, `<g id="`+id+`"`)
	}
	assert.Less(t, strings.Index(out, `<g id="tiles"`), strings.Index(out, `<g id="borders"`))
	assert.Equal(t, 80, strings.Count(out, "<circle"))
	assert.GreaterOrEqual(t, strings.Count(out, "<polygon"), len(w.Graph().Usable()))
	assert.Contains(t, out, "fill-rule:evenodd")
	for _, tr := range w.Territories() {
		assert.Contains(t, out, ">"+tr.Name+"<")
	}
}

func TestRender_Toggles(t *testing.T) {
	w := smallWorld(t)
	var buf bytes.Buffer
	require.NoError(t, svgmap.Render(&buf, w, svgmap.WithBorders(false), svgmap.WithLabels(false)))
	out := buf.String()

	assert.Contains(t, out, `<g id="tiles"`)
	assert.NotContains(t, out, `<g id="borders"`)
	assert.NotContains(t, out, `<g id="labels"`)
	assert.NotContains(t, out, `<g id="sites"`)
	assert.NotContains(t, out, "Generated State")
	assert.Contains(t, out, `width="600"`)

	buf.Reset()
	require.NoError(t, svgmap.Render(&buf, w, svgmap.WithBorderWidth(0)))
	assert.NotContains(t, buf.String(), "fill-rule:evenodd")
	assert.Contains(t, buf.String(), "fill:none")
}

func TestRender_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, svgmap.Render(&a, smallWorld(t)))
	require.NoError(t, svgmap.Render(&b, smallWorld(t)))
	assert.Equal(t, a.String(), b.String())
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestRender_Errors(t *testing.T) {
	assert.ErrorIs(t, svgmap.Render(&bytes.Buffer{}, nil), svgmap.ErrNilWorld)

	err := svgmap.Render(&failingWriter{after: 3}, smallWorld(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { svgmap.WithScale(0) })
	assert.Panics(t, func() { svgmap.WithBorderWidth(-1) })
}
