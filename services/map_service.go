package services

import (
	"fmt"
	"math"
)

// MapService is a mock of the external map provider: straight-line distance
// with an assumed travel speed. Good enough for display estimates.
type MapService struct {
	SpeedKmh float64
}

func NewMapService() *MapService {
	return &MapService{SpeedKmh: 40}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Estimate struct {
	DistanceText  string  `json:"distanceText"`
	DistanceValue float64 `json:"distanceValue"` // meters
	DurationText  string  `json:"durationText"`
	DurationValue float64 `json:"durationValue"` // seconds
}

// DistanceAndDuration estimates travel between two points. One degree of
// latitude is taken as 111 km.
func (m *MapService) DistanceAndDuration(origin, dest Coordinates) Estimate {
	dx := math.Abs(origin.Lat-dest.Lat) * 111
	dy := math.Abs(origin.Lng-dest.Lng) * 111
	distanceKm := math.Sqrt(dx*dx + dy*dy)

	durationMins := distanceKm / m.SpeedKmh * 60

	return Estimate{
		DistanceText:  fmt.Sprintf("%.1f km", distanceKm),
		DistanceValue: distanceKm * 1000,
		DurationText:  fmt.Sprintf("%d mins", int(math.Ceil(durationMins))),
		DurationValue: durationMins * 60,
	}
}
