package scale_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chartscale/scale"
)

// column builds a one-field dataset from raw values.
func column(key string, values ...any) scale.Dataset {
	rows := make([]map[string]any, len(values))
	for i, v := range values {
		rows[i] = map[string]any{key: v}
	}
	return scale.NewDataset(rows)
}

// TestInferType_Classification is the decision table of the inferencer.
func TestInferType_Classification(t *testing.T) {
	tests := []struct {
		name string
		data scale.Dataset
		want scale.DataType
	}{
		{"empty dataset", nil, scale.TypeCategorical},
		{"all null", column("v", nil, nil), scale.TypeCategorical},
		{"integers", column("v", 1, 2, 3), scale.TypeNumber},
		{"wide positive range", column("v", 10, 50, 99999), scale.TypeLogarithmic},
		{"ratio exactly 1000", column("v", 1, 1000), scale.TypeNumber},
		{"ratio just above 1000", column("v", 1, 1001), scale.TypeLogarithmic},
		{"zero disqualifies log", column("v", 0, 5000), scale.TypeNumber},
		{"negative disqualifies log", column("v", -1, 5000), scale.TypeNumber},
		{"numeric strings", column("v", "1", "2000"), scale.TypeLogarithmic},
		{"numbers and numeric strings", column("v", 4, "5.5", nil), scale.TypeNumber},
		{"date-like integers stay numeric", column("v", "20240105", "20240106"), scale.TypeNumber},
		{"iso dates", column("v", "2024-01-01", "2024-02-01"), scale.TypeTime},
		{"mixed date shapes", column("v", "2024-01-01", "1/15/2024", "Mar 3, 2024", "2024-4-1"), scale.TypeTime},
		{"time values", column("v", time.Now(), time.Now().Add(time.Hour)), scale.TypeTime},
		{"timestamp and iso date", column("v", 1700000000000, "2024-01-01"), scale.TypeTime},
		{"numeric string and iso date", column("v", "42", "2024-01-01"), scale.TypeCategorical},
		{"impossible iso date", column("v", "2024-02-28", "2024-02-30"), scale.TypeCategorical},
		{"impossible lenient date", column("v", "2024-1-5", "2024-2-30"), scale.TypeCategorical},
		{"digit separators are text", column("v", "1_000", "2"), scale.TypeCategorical},
		{"separated wide range is text", column("v", "1_000", "2_000_000"), scale.TypeCategorical},
		{"hex floats are text", column("v", "0x1p4", "0X1P-2"), scale.TypeCategorical},
		{"hex integers are numeric", column("v", "0x10", "0xFF"), scale.TypeNumber},
		{"words", column("v", "a", "b"), scale.TypeCategorical},
		{"booleans", column("v", true, false), scale.TypeCategorical},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inf := scale.InferType(tc.data, "v")
			assert.Equal(t, tc.want, inf.Type)
			require.NotNil(t, inf.Scale)
			assert.Equal(t, tc.want, inf.Scale.Type(), "scale variant must match the type")
		})
	}
}

// TestInferType_FreshScale checks the returned scale is unconfigured.
func TestInferType_FreshScale(t *testing.T) {
	inf := scale.InferType(column("v", 1, 2), "v")
	lin, ok := inf.Scale.(scale.Linear)
	require.True(t, ok)
	assert.Nil(t, lin.Domain())
	assert.Nil(t, lin.Range())

	inf = scale.InferType(nil, "v")
	band, ok := inf.Scale.(scale.Band)
	require.True(t, ok)
	assert.Empty(t, band.Domain())
	assert.Equal(t, scale.DefaultPadding, band.Padding())
}

// TestInferType_MissingKey treats an absent key like an all-null field.
func TestInferType_MissingKey(t *testing.T) {
	inf := scale.InferType(column("v", 1, 2), "other")
	assert.Equal(t, scale.TypeCategorical, inf.Type)
}

// TestInferType_LogProperty samples positive fields on both sides of the
// threshold and fields containing a non-positive value.
func TestInferType_LogProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		lo := 1 + rng.Float64()*100
		narrow := column("v", lo, lo*(1+rng.Float64()*999))
		assert.Equal(t, scale.TypeNumber, scale.InferType(narrow, "v").Type)

		wide := column("v", lo, lo*(1001+rng.Float64()*1e6))
		assert.Equal(t, scale.TypeLogarithmic, scale.InferType(wide, "v").Type)

		withZero := column("v", -rng.Float64()*10, lo, lo*1e6)
		assert.Equal(t, scale.TypeNumber, scale.InferType(withZero, "v").Type)
	}
}

// TestInferType_Options exercises the threshold and padding knobs.
func TestInferType_Options(t *testing.T) {
	inf := scale.InferType(column("v", 1, 50), "v", scale.WithLogThreshold(10))
	assert.Equal(t, scale.TypeLogarithmic, inf.Type)

	inf = scale.InferType(column("v", "a"), "v", scale.WithPadding(0.3))
	assert.Equal(t, 0.3, inf.Scale.(scale.Band).Padding())

	plus3 := time.FixedZone("plus3", 3*3600)
	inf = scale.InferType(column("v", "1/5/2024"), "v", scale.WithLocation(plus3))
	require.Equal(t, scale.TypeTime, inf.Type)
	assert.Equal(t, plus3, inf.Scale.(scale.TimeScale).Location())
}
