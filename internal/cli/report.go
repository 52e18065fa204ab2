package cli

import (
	"github.com/katalvlaran/chartscale/scale"
)

// defaultTickCount is the tick hint used when --ticks is not given.
const defaultTickCount = 10

// inference is one row of `chartscale infer`.
type inference struct {
	Field string         `json:"field"`
	Type  scale.DataType `json:"type"`
}

// band is the start position of one category.
type band struct {
	Key   string  `json:"key"`
	Start float64 `json:"start"`
}

// axisReport describes a fully built scale.
type axisReport struct {
	Field     string         `json:"field"`
	Type      scale.DataType `json:"type"`
	Values    int            `json:"values"`
	Domain    []scale.Value  `json:"domain"`
	Range     []float64      `json:"range,omitempty"`
	Ticks     []float64      `json:"ticks,omitempty"`
	Step      float64        `json:"step,omitempty"`
	Bandwidth float64        `json:"bandwidth,omitempty"`
	Bands     []band         `json:"bands,omitempty"`
}

// buildReport creates the scale for field and summarises it.
func buildReport(data scale.Dataset, field string, opts []scale.Option, tickCount int) (axisReport, error) {
	inf, err := scale.CreateScale(data, field, opts...)
	if err != nil {
		return axisReport{}, err
	}
	recorder.ObserveInference(inf.Type)

	rep := axisReport{
		Field:  field,
		Type:   inf.Type,
		Values: len(data.Values(field)),
		Domain: []scale.Value{},
		Range:  inf.Scale.Range(),
	}

	switch s := inf.Scale.(type) {
	case scale.Linear:
		if d := s.Domain(); d != nil {
			rep.Domain = numbers(d)
			rep.Ticks = s.Ticks(tickCount)
		}
	case scale.Log:
		if d := s.Domain(); d != nil {
			rep.Domain = numbers(d)
			rep.Ticks = s.Ticks(tickCount)
		}
	case scale.TimeScale:
		if d := s.Domain(); d != nil {
			rep.Domain = []scale.Value{scale.Time(d[0]), scale.Time(d[1])}
		}
	case scale.Band:
		keys := s.Domain()
		for _, k := range keys {
			rep.Domain = append(rep.Domain, scale.Text(k))
		}
		if s.Range() != nil {
			rep.Step = s.Step()
			rep.Bandwidth = s.Bandwidth()
			for _, k := range keys {
				x, _ := s.Map(k)
				rep.Bands = append(rep.Bands, band{Key: k, Start: x})
			}
		}
	}
	return rep, nil
}

func numbers(fs []float64) []scale.Value {
	out := make([]scale.Value, len(fs))
	for i, f := range fs {
		out[i] = scale.Number(f)
	}
	return out
}
