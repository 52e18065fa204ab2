// SPDX-License-Identifier: MIT

package scale

// CreateScale infers the type of key, sets the domain from data and, when
// WithRange was given, the output interval.
//
// Stages:
//  1. InferType  → DataType + empty scale
//  2. SetDomain  (always)
//  3. SetRange   (only with WithRange)
//
// Each stage is total for the inferred type, so a non-nil error indicates a
// bug rather than bad data. Absent values yield an empty domain.
func CreateScale(data Dataset, key string, opts ...Option) (Inference, error) {
	cfg := newConfig(opts...)
	inf := inferType(data, key, cfg)

	s, err := SetDomain(inf.Scale, data, key, inf.Type)
	if err != nil {
		return Inference{}, scaleErrorf(opCreateScale, err)
	}
	if cfg.rng != nil {
		s, err = SetRange(s, inf.Type, cfg.rng[0], cfg.rng[1])
		if err != nil {
			return Inference{}, scaleErrorf(opCreateScale, err)
		}
	}
	return Inference{Type: inf.Type, Scale: s}, nil
}
