package domain

// RouteRepresentation - детализация маршрута в ответе
type RouteRepresentation string

const (
	RepresentationSummaryOnly RouteRepresentation = "summaryOnly"
	RepresentationPolyline    RouteRepresentation = "polyline"
	RepresentationNone        RouteRepresentation = "none"
)

func (r RouteRepresentation) IsValid() bool {
	switch r {
	case RepresentationSummaryOnly, RepresentationPolyline, RepresentationNone:
		return true
	}
	return false
}

// TravelTimeScope - значение параметра computeTravelTimeFor
type TravelTimeScope string

const (
	TravelTimeAll              TravelTimeScope = "all"
	TravelTimeNone             TravelTimeScope = "none"
	TravelTimeAllExceptBlocked TravelTimeScope = "allExceptBlocked"
)

func (s TravelTimeScope) IsValid() bool {
	switch s {
	case TravelTimeAll, TravelTimeNone, TravelTimeAllExceptBlocked:
		return true
	}
	return false
}

// RouteType - тип оптимизации маршрута
type RouteType string

const (
	RouteTypeFastest   RouteType = "fastest"
	RouteTypeShortest  RouteType = "shortest"
	RouteTypeEco       RouteType = "eco"
	RouteTypeThrilling RouteType = "thrilling"
)

func (t RouteType) IsValid() bool {
	switch t {
	case RouteTypeFastest, RouteTypeShortest, RouteTypeEco, RouteTypeThrilling:
		return true
	}
	return false
}

// Avoid - причина исключения участков дороги из маршрута
type Avoid string

const (
	AvoidUnpavedRoads     Avoid = "unpavedRoads"
	AvoidTollRoads        Avoid = "tollRoads"
	AvoidMotorways        Avoid = "motorways"
	AvoidFerries          Avoid = "ferries"
	AvoidCarpools         Avoid = "carpools"
	AvoidAlreadyUsedRoads Avoid = "alreadyUsedRoads"
	AvoidBorderCrossings  Avoid = "borderCrossings"
	AvoidTunnels          Avoid = "tunnels"
	AvoidCarTrains        Avoid = "carTrains"
	AvoidLowEmissionZones Avoid = "lowEmissionZones"
)

func (a Avoid) IsValid() bool {
	switch a {
	case AvoidUnpavedRoads, AvoidTollRoads, AvoidMotorways, AvoidFerries, AvoidCarpools,
		AvoidAlreadyUsedRoads, AvoidBorderCrossings, AvoidTunnels, AvoidCarTrains, AvoidLowEmissionZones:
		return true
	}
	return false
}

// RouteOptions - полный набор опций маршрута
type RouteOptions struct {
	Representation RouteRepresentation `json:"route_representation"`
	TravelTimeFor  TravelTimeScope     `json:"compute_travel_time_for"`
	RouteType      RouteType           `json:"route_type"`
	Traffic        bool                `json:"traffic"`
	Avoid          []Avoid             `json:"avoid"`
}

// DefaultRouteOptions возвращает опции по умолчанию
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		Representation: RepresentationSummaryOnly,
		TravelTimeFor:  TravelTimeAll,
		RouteType:      RouteTypeFastest,
		Traffic:        true,
		Avoid:          []Avoid{AvoidUnpavedRoads},
	}
}

// RouteOptionsInput - частично заданные опции. nil означает "не задано".
// Avoid, указывающий на пустой срез, означает явно пустой набор.
type RouteOptionsInput struct {
	Representation *RouteRepresentation `json:"route_representation,omitempty"`
	TravelTimeFor  *TravelTimeScope     `json:"compute_travel_time_for,omitempty"`
	RouteType      *RouteType           `json:"route_type,omitempty"`
	Traffic        *bool                `json:"traffic,omitempty"`
	Avoid          *[]Avoid             `json:"avoid,omitempty"`
}
