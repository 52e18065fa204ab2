package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chartscale/scale"
)

// TestSetRange_RoundTrip reads back exactly the interval passed in.
func TestSetRange_RoundTrip(t *testing.T) {
	tests := []struct {
		typ scale.DataType
		s   scale.Scale
	}{
		{scale.TypeNumber, scale.NewLinear()},
		{scale.TypeLogarithmic, scale.NewLog()},
		{scale.TypeTime, scale.NewTime(nil)},
		{scale.TypeCategorical, scale.NewBand(0.1).WithDomain("a", "b")},
		{scale.TypeText, scale.NewBand(0.1)},
	}
	for _, tc := range tests {
		for _, r := range [][2]float64{{0, 500}, {400, 0}, {-3.25, 7.5}} {
			out, err := scale.SetRange(tc.s, tc.typ, r[0], r[1])
			require.NoError(t, err, tc.typ)
			assert.Equal(t, []float64{r[0], r[1]}, out.Range(), tc.typ)
			assert.Nil(t, tc.s.Range(), "input scale must stay unconfigured")
		}
	}
}

// TestSetRange_BandLayout checks band placement and total span.
func TestSetRange_BandLayout(t *testing.T) {
	s, err := scale.SetRange(scale.NewBand(0.1).WithDomain("a", "b", "c"), scale.TypeCategorical, 0, 300)
	require.NoError(t, err)
	band := s.(scale.Band)

	step := 300 / 3.1
	assert.InDelta(t, step, band.Step(), 1e-9)
	assert.InDelta(t, step*0.9, band.Bandwidth(), 1e-9)

	for i, key := range []string{"a", "b", "c"} {
		x, ok := band.Map(key)
		require.True(t, ok)
		assert.InDelta(t, 300*(0.1+float64(i))/3.1, x, 1e-9, key)
	}

	// Outer padding closes the span at r1.
	last, _ := band.Map("c")
	assert.InDelta(t, 300, last+band.Bandwidth()+band.Step()*0.1, 1e-9)

	_, ok := band.Map("z")
	assert.False(t, ok)
}

// TestSetRange_BandReversed keeps domain order from r0 downwards.
func TestSetRange_BandReversed(t *testing.T) {
	s, err := scale.SetRange(scale.NewBand(0.1).WithDomain("a", "b", "c"), scale.TypeCategorical, 300, 0)
	require.NoError(t, err)
	band := s.(scale.Band)

	a, _ := band.Map("a")
	c, _ := band.Map("c")
	assert.InDelta(t, 300*2.1/3.1, a, 1e-9)
	assert.InDelta(t, 300*0.1/3.1, c, 1e-9)
}

// TestSetRange_ContractViolations mirrors SetDomain's sentinels.
func TestSetRange_ContractViolations(t *testing.T) {
	_, err := scale.SetRange(scale.NewLinear(), scale.DataType("bogus"), 0, 1)
	assert.ErrorIs(t, err, scale.ErrUnknownType)

	_, err = scale.SetRange(scale.NewTime(nil), scale.TypeNumber, 0, 1)
	assert.ErrorIs(t, err, scale.ErrScaleMismatch)

	_, err = scale.SetRange(nil, scale.TypeTime, 0, 1)
	assert.ErrorIs(t, err, scale.ErrScaleMismatch)
}
