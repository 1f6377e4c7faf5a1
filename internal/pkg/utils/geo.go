package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FiniteCoordinates проверяет, что координаты - конечные числа. Диапазон не проверяется:
// выход за пределы отклоняет сам Routing API.
func FiniteCoordinates(lat, lon float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && !math.IsNaN(lon) && !math.IsInf(lon, 0)
}

// ParseLatLon разбирает строку вида "lat,lon"
func ParseLatLon(s string) (float64, float64, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected lat,lon: %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %w", err)
	}

	if !FiniteCoordinates(lat, lon) {
		return 0, 0, fmt.Errorf("coordinates must be finite: %q", s)
	}

	return lat, lon, nil
}
