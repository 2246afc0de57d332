package photonic_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siroap/photonic"
)

// TestReduce_SeriesWaveguides verifies that two cascaded waveguides reduce
// to a single waveguide of the summed length.
func TestReduce_SeriesWaveguides(t *testing.T) {
	p := photonic.DefaultWaveguideParams()
	p.Loss = 4
	p1, p2 := p, p
	p1.Length, p2.Length = 120e-6, 380e-6

	a, err := photonic.NewWaveguide(p1, 0, false)
	require.NoError(t, err)
	b, err := photonic.NewWaveguide(p2, 0, false)
	require.NoError(t, err)
	whole := p
	whole.Length = 500e-6
	ref, err := photonic.NewWaveguide(whole, 0, false)
	require.NoError(t, err)

	wls := []float64{1.53e-6, 1.55e-6, 1.57e-6}
	got, err := photonic.Reduce(
		[]photonic.Part{{ID: "a", Component: a}, {ID: "b", Component: b}},
		[]photonic.Connection{{A: photonic.Port{Component: "a", Index: 1}, B: photonic.Port{Component: "b", Index: 0}}},
		[]photonic.Port{{Component: "a", Index: 0}, {Component: "b", Index: 1}},
		wls,
	)
	require.NoError(t, err)
	want, err := ref.ScatteringMatrix(wls)
	require.NoError(t, err)

	for k := range wls {
		assert.InDelta(t, 0, cmplx.Abs(got[k].At(0, 1)-want[k].At(0, 1)), 1e-9, "wl=%g", wls[k])
		assert.InDelta(t, 0, cmplx.Abs(got[k].At(1, 0)-want[k].At(1, 0)), 1e-9)
		assert.InDelta(t, 0, cmplx.Abs(got[k].At(0, 0)), 1e-12)
	}
}

func TestReduce_Errors(t *testing.T) {
	wg, err := photonic.NewWaveguide(photonic.DefaultWaveguideParams(), 0, false)
	require.NoError(t, err)
	parts := []photonic.Part{{ID: "w", Component: wg}}
	port := func(i int) photonic.Port { return photonic.Port{Component: "w", Index: i} }
	wls := []float64{1.55e-6}

	cases := []struct {
		name     string
		parts    []photonic.Part
		links    []photonic.Connection
		external []photonic.Port
		err      error
	}{
		{"Dangling", parts, nil, []photonic.Port{port(0)}, photonic.ErrDanglingPort},
		{"PortTwice", parts, []photonic.Connection{{A: port(0), B: port(1)}}, []photonic.Port{port(0)}, photonic.ErrPortInUse},
		{"PortRange", parts, nil, []photonic.Port{port(0), port(2)}, photonic.ErrPortRange},
		{"UnknownPart", parts, nil, []photonic.Port{port(0), {Component: "x", Index: 0}}, photonic.ErrUnknownPart},
		{"DuplicatePart", append(parts, photonic.Part{ID: "w", Component: wg}), nil, nil, photonic.ErrDuplicatePart},
		{"NilComponent", []photonic.Part{{ID: "n"}}, nil, nil, photonic.ErrDuplicatePart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := photonic.Reduce(tc.parts, tc.links, tc.external, wls)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err = photonic.Reduce(parts, nil, []photonic.Port{port(0), port(1)}, nil)
	assert.ErrorIs(t, err, photonic.ErrBadWavelength)
}

// TestRingResonator4_Lossless checks that a lossless ring only splits power
// between thru and drop, and drops everything on resonance.
func TestRingResonator4_Lossless(t *testing.T) {
	rp := photonic.DefaultRingParams()
	rp.Loss = 0
	half := photonic.Params{Length: rp.RingLength / 2, Neff: rp.Neff, Ng: rp.Ng, WL0: rp.WL0}
	// Cancel the round-trip phase at WL0 so the ring resonates there.
	rp.Phase = -2 * half.StaticPhase(rp.WL0)

	r, err := photonic.NewRingResonator4(rp)
	require.NoError(t, err)
	assert.Equal(t, photonic.KindRingResonator, r.Kind())
	assert.Equal(t, 4, r.PortCount())
	assert.Len(t, r.Parts(), 4)
	assert.Len(t, r.Links(), 4)

	wls := []float64{rp.WL0, 1.5502e-6, 1.5507e-6}
	s, err := r.ScatteringMatrix(wls)
	require.NoError(t, err)

	for k := range wls {
		thru := sq(s[k].At(photonic.RingThru, photonic.RingIn))
		drop := sq(s[k].At(photonic.RingDrop, photonic.RingIn))
		add := sq(s[k].At(photonic.RingAdd, photonic.RingIn))
		assert.InDelta(t, 1, thru+drop, 1e-9, "wl=%g", wls[k])
		assert.InDelta(t, 0, add, 1e-12)
		assert.InDelta(t, 0, sq(s[k].At(photonic.RingIn, photonic.RingIn)), 1e-12)
		// Reciprocity.
		assert.InDelta(t, 0, cmplx.Abs(s[k].At(photonic.RingDrop, photonic.RingIn)-s[k].At(photonic.RingIn, photonic.RingDrop)), 1e-9)
	}

	// On resonance with equal couplers everything leaves through drop.
	assert.InDelta(t, 1, sq(s[0].At(photonic.RingDrop, photonic.RingIn)), 1e-9)
	assert.InDelta(t, 0, sq(s[0].At(photonic.RingThru, photonic.RingIn)), 1e-9)
}

func TestRingResonator4_Lossy(t *testing.T) {
	r, err := photonic.NewRingResonator4(photonic.DefaultRingParams())
	require.NoError(t, err)
	s, err := r.ScatteringMatrix([]float64{1.55e-6, 1.551e-6})
	require.NoError(t, err)
	for k := range s {
		out := sq(s[k].At(photonic.RingThru, photonic.RingIn)) + sq(s[k].At(photonic.RingDrop, photonic.RingIn))
		assert.Less(t, out, 1.0)
		assert.Greater(t, out, 0.0)
	}

	bad := photonic.DefaultRingParams()
	bad.KappaDrop = 2
	_, err = photonic.NewRingResonator4(bad)
	assert.ErrorIs(t, err, photonic.ErrCouplingRange)
}
