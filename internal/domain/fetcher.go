package domain

import "context"

// ParameterValues holds the raw upstream measurement per parameter. A missing
// key is the normal "no data" state, not an error.
type ParameterValues map[ParameterCode]float64

// ParameterSource retrieves raw measurements for one coordinate and date.
type ParameterSource interface {
	// Fetch returns the per-parameter values for the given day. A nil or
	// empty map means no data; callers treat a returned error the same way.
	Fetch(ctx context.Context, lat, lng float64, date string, params []ParameterCode) (ParameterValues, error)
}
