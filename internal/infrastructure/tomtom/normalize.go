package tomtom

import (
	"strconv"
	"strings"

	"github.com/routing-gateway/internal/domain"
)

// Имена query параметров TomTom Routing API
const (
	paramRouteRepresentation = "routeRepresentation"
	paramComputeTravelTime   = "computeTravelTimeFor"
	paramRouteType           = "routeType"
	paramTraffic             = "traffic"
	paramAvoid               = "avoid"
	paramKey                 = "key"

	paramTimeBudget     = "timeBudgetInSec"
	paramDistanceBudget = "distanceBudgetInMeters"
	paramFuelBudget     = "fuelBudgetInLiters"
)

// NormalizeOptions дополняет частично заданные опции значениями по умолчанию
func NormalizeOptions(in domain.RouteOptionsInput) domain.RouteOptions {
	opts := domain.DefaultRouteOptions()

	if in.Representation != nil {
		opts.Representation = *in.Representation
	}
	if in.TravelTimeFor != nil {
		opts.TravelTimeFor = *in.TravelTimeFor
	}
	if in.RouteType != nil {
		opts.RouteType = *in.RouteType
	}
	if in.Traffic != nil {
		opts.Traffic = *in.Traffic
	}
	if in.Avoid != nil {
		opts.Avoid = append([]domain.Avoid{}, (*in.Avoid)...)
	}

	return opts
}

// JoinAvoid сериализует набор avoid через запятую в исходном порядке.
// Пустой набор даёт пустую строку.
func JoinAvoid(avoid []domain.Avoid) string {
	parts := make([]string, len(avoid))
	for i, a := range avoid {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

// OptionParams возвращает query параметры опций маршрута вместе с ключом.
// avoid присутствует всегда, даже пустой.
func OptionParams(opts domain.RouteOptions, key string) map[string]string {
	return map[string]string{
		paramRouteRepresentation: string(opts.Representation),
		paramComputeTravelTime:   string(opts.TravelTimeFor),
		paramRouteType:           string(opts.RouteType),
		paramTraffic:             strconv.FormatBool(opts.Traffic),
		paramAvoid:               JoinAvoid(opts.Avoid),
		paramKey:                 key,
	}
}

// BudgetParams возвращает только заданные бюджеты и ключ
func BudgetParams(budget domain.Budget, key string) map[string]string {
	params := map[string]string{paramKey: key}

	if budget.TimeInSec != nil {
		params[paramTimeBudget] = formatFloat(*budget.TimeInSec)
	}
	if budget.DistanceInMeters != nil {
		params[paramDistanceBudget] = formatFloat(*budget.DistanceInMeters)
	}
	if budget.FuelInLiters != nil {
		params[paramFuelBudget] = formatFloat(*budget.FuelInLiters)
	}

	return params
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
