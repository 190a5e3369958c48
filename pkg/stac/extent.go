package stac

import (
	"encoding/json"
	"time"
)

// SpatialExtent is the set of bounding boxes a collection covers.
type SpatialExtent struct {
	BBoxes [][]float64 `json:"bbox"`
}

// NewSpatialExtent returns a spatial extent from one or more bounding
// boxes in [west, south, east, north] order.
func NewSpatialExtent(bboxes ...[]float64) SpatialExtent {
	if len(bboxes) == 0 {
		return SpatialExtent{BBoxes: [][]float64{}}
	}
	return SpatialExtent{BBoxes: bboxes}
}

// Interval is one temporal range; a nil endpoint leaves that side
// open.
type Interval [2]*time.Time

// MarshalJSON emits the endpoints as RFC 3339 strings, null for open
// ends.
func (iv Interval) MarshalJSON() ([]byte, error) {
	var out [2]*string
	for i, t := range iv {
		if t != nil {
			s := t.UTC().Format(time.RFC3339)
			out[i] = &s
		}
	}
	return json.Marshal(out)
}

// TemporalExtent is the set of time intervals a collection covers.
type TemporalExtent struct {
	Intervals []Interval `json:"interval"`
}

// NewTemporalExtent returns a temporal extent from one or more
// intervals.
func NewTemporalExtent(intervals ...Interval) TemporalExtent {
	if len(intervals) == 0 {
		return TemporalExtent{Intervals: []Interval{}}
	}
	return TemporalExtent{Intervals: intervals}
}

// Extent describes the spatial and temporal coverage of a collection.
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// NewExtent pairs a spatial and a temporal extent.
func NewExtent(spatial SpatialExtent, temporal TemporalExtent) Extent {
	return Extent{Spatial: spatial, Temporal: temporal}
}

// WorldExtent covers the whole globe with an open time range.
func WorldExtent() Extent {
	return Extent{
		Spatial:  NewSpatialExtent([]float64{-180, -90, 180, 90}),
		Temporal: NewTemporalExtent(Interval{}),
	}
}

// Range bounds a summarized property; it serializes as a two-element
// array.
type Range struct {
	Minimum any
	Maximum any
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Minimum, r.Maximum})
}
