package domain

import "fmt"

// TransportType identifies the kind of transit infrastructure a location belongs to.
type TransportType string

const (
	TransportMetro   TransportType = "metro"
	TransportRailway TransportType = "railway"
	TransportBus     TransportType = "bus"
	TransportSignal  TransportType = "signal"
)

// TransportTypes lists every type in catalog iteration order.
var TransportTypes = []TransportType{TransportMetro, TransportRailway, TransportBus, TransportSignal}

// ParseTransportType converts a path/query value into a TransportType.
func ParseTransportType(s string) (TransportType, error) {
	switch TransportType(s) {
	case TransportMetro, TransportRailway, TransportBus, TransportSignal:
		return TransportType(s), nil
	}
	return "", fmt.Errorf("%w: unknown transport type %q", ErrInvalid, s)
}

// Location is a single transit point in the catalog.
type Location struct {
	Name         string        `json:"name"`
	Type         TransportType `json:"type"`
	BaseFootfall int           `json:"base_footfall"`
	Multiplier   float64       `json:"multiplier"`
}

// AreaMember is one location inside an area, tagged with its transport type.
type AreaMember struct {
	Name string
	Type TransportType
}

// Area is a named cluster of co-located transit points across transport types.
type Area struct {
	Name    string
	Members map[TransportType][]string
}

// MemberList flattens the area membership in transport-type order so callers
// iterate deterministically.
func (a Area) MemberList() []AreaMember {
	var members []AreaMember
	for _, t := range TransportTypes {
		for _, name := range a.Members[t] {
			members = append(members, AreaMember{Name: name, Type: t})
		}
	}
	return members
}

var metroStations = []string{
	"Ghatkopar", "Andheri", "Versova", "Aarey", "Dahisar East",
	"DN Nagar", "Azad Nagar", "Western Express Highway", "Marol Naka", "Airport Road",
}

var railwayStations = []string{
	"Andheri West", "Bandra", "Dadar", "Borivali", "Malad",
	"Goregaon", "Jogeshwari", "Vile Parle", "Santa Cruz", "Khar Road",
}

var busStations = []string{
	"Andheri Bus Depot", "Kurla Bus Station", "Borivali Bus Depot",
	"Ghatkopar Bus Stand", "Bandra Bus Stand", "Dadar Bus Terminal",
	"Malad Bus Depot", "Goregaon Bus Depot", "Versova Bus Stand", "DN Nagar Bus Stop",
}

var trafficSignals = []string{
	"Amboli Naka", "Andheri Station Signal", "Western Express Highway Junction",
	"Versova Junction", "DN Nagar Signal", "Azad Nagar Junction",
	"Ghatkopar Junction", "Airport Road Signal", "Marol Naka Signal", "Aarey Signal",
}

var baseFootfall = map[TransportType]int{
	TransportMetro:   5000,
	TransportRailway: 8000,
	TransportBus:     3000,
	TransportSignal:  4000,
}

var locationMultipliers = map[string]float64{
	"Ghatkopar": 1.2, "Andheri": 1.5, "Versova": 0.9, "Aarey": 0.7,
	"Dahisar East": 0.8, "DN Nagar": 1.0, "Azad Nagar": 0.85,
	"Western Express Highway": 1.1, "Marol Naka": 1.3, "Airport Road": 1.4,
	"Andheri West": 1.6, "Bandra": 1.7, "Dadar": 1.8, "Borivali": 1.5,
	"Malad": 1.3, "Goregaon": 1.2, "Jogeshwari": 1.1, "Vile Parle": 1.3,
	"Santa Cruz": 1.2, "Khar Road": 1.4, "Andheri Bus Depot": 1.2,
	"Kurla Bus Station": 1.3, "Borivali Bus Depot": 1.1,
	"Ghatkopar Bus Stand": 1.0, "Bandra Bus Stand": 1.2,
	"Dadar Bus Terminal": 1.4, "Malad Bus Depot": 1.0,
	"Goregaon Bus Depot": 0.9, "Versova Bus Stand": 0.8,
	"DN Nagar Bus Stop": 0.9, "Amboli Naka": 1.3,
	"Andheri Station Signal": 1.5, "Western Express Highway Junction": 1.6,
	"Versova Junction": 1.0, "DN Nagar Signal": 0.9,
	"Azad Nagar Junction": 0.85, "Ghatkopar Junction": 1.2,
	"Airport Road Signal": 1.4, "Marol Naka Signal": 1.3, "Aarey Signal": 0.7,
}

// hourMultipliers shapes demand across the day: morning and evening rush
// peaks at hours 9 and 18, overnight trough around hour 2.
var hourMultipliers = [24]float64{
	0.3, 0.2, 0.2, 0.2, 0.3, 0.4,
	0.5, 0.8, 1.3, 1.5, 1.2, 1.0,
	0.9, 0.8, 0.7, 0.8, 0.9, 1.2,
	1.5, 1.4, 1.2, 0.9, 0.7, 0.5,
}

var transportFactors = map[TransportType]float64{
	TransportMetro:   1.0,
	TransportRailway: 1.3,
	TransportBus:     0.8,
	TransportSignal:  1.2,
}

var areaMapping = []Area{
	{Name: "Andheri", Members: map[TransportType][]string{
		TransportMetro:   {"Andheri"},
		TransportRailway: {"Andheri West"},
		TransportBus:     {"Andheri Bus Depot"},
		TransportSignal:  {"Andheri Station Signal", "Amboli Naka"},
	}},
	{Name: "Versova", Members: map[TransportType][]string{
		TransportMetro:  {"Versova"},
		TransportBus:    {"Versova Bus Stand"},
		TransportSignal: {"Versova Junction"},
	}},
	{Name: "Ghatkopar", Members: map[TransportType][]string{
		TransportMetro:  {"Ghatkopar"},
		TransportBus:    {"Ghatkopar Bus Stand"},
		TransportSignal: {"Ghatkopar Junction"},
	}},
	{Name: "DN Nagar", Members: map[TransportType][]string{
		TransportMetro:  {"DN Nagar"},
		TransportBus:    {"DN Nagar Bus Stop"},
		TransportSignal: {"DN Nagar Signal"},
	}},
	{Name: "Bandra", Members: map[TransportType][]string{
		TransportRailway: {"Bandra"},
		TransportBus:     {"Bandra Bus Stand"},
	}},
	{Name: "Dadar", Members: map[TransportType][]string{
		TransportRailway: {"Dadar"},
		TransportBus:     {"Dadar Bus Terminal"},
	}},
	{Name: "Borivali", Members: map[TransportType][]string{
		TransportRailway: {"Borivali"},
		TransportBus:     {"Borivali Bus Depot"},
	}},
}

// Catalog is the immutable registry of transit locations, areas and the
// demand-shaping tables. Built once at startup and shared read-only across
// requests, so no locking is needed.
type Catalog struct {
	stations map[TransportType][]string
	areas    []Area
}

// NewCatalog builds the catalog from the static reference tables.
func NewCatalog() *Catalog {
	return &Catalog{
		stations: map[TransportType][]string{
			TransportMetro:   metroStations,
			TransportRailway: railwayStations,
			TransportBus:     busStations,
			TransportSignal:  trafficSignals,
		},
		areas: areaMapping,
	}
}

// LocationsOf returns every location of the given transport type, in
// catalog order.
func (c *Catalog) LocationsOf(t TransportType) []Location {
	names := c.stations[t]
	locations := make([]Location, 0, len(names))
	for _, name := range names {
		locations = append(locations, Location{
			Name:         name,
			Type:         t,
			BaseFootfall: baseFootfall[t],
			Multiplier:   c.MultiplierOf(name),
		})
	}
	return locations
}

// TransportTypeOf resolves a location name to its transport type by exact,
// case-sensitive membership lookup.
func (c *Catalog) TransportTypeOf(name string) (TransportType, bool) {
	for _, t := range TransportTypes {
		for _, station := range c.stations[t] {
			if station == name {
				return t, true
			}
		}
	}
	return "", false
}

// MultiplierOf returns the per-location demand multiplier, defaulting to 1.0
// for locations absent from the table.
func (c *Catalog) MultiplierOf(name string) float64 {
	if m, ok := locationMultipliers[name]; ok {
		return m
	}
	return 1.0
}

// BaseFootfallOf returns the fixed daily base footfall for a transport type.
func (c *Catalog) BaseFootfallOf(t TransportType) int {
	return baseFootfall[t]
}

// TransportFactor returns the congestion weighting for a transport type,
// defaulting to 1.0.
func (c *Catalog) TransportFactor(t TransportType) float64 {
	if f, ok := transportFactors[t]; ok {
		return f
	}
	return 1.0
}

// HourMultiplier returns the demand multiplier for an hour of day, with the
// original table's 0.8 fallback for out-of-range input.
func (c *Catalog) HourMultiplier(hour int) float64 {
	if hour < 0 || hour >= len(hourMultipliers) {
		return 0.8
	}
	return hourMultipliers[hour]
}

// Areas returns every area in catalog order.
func (c *Catalog) Areas() []Area {
	return c.areas
}

// AreaByName looks an area up by exact name.
func (c *Catalog) AreaByName(name string) (Area, bool) {
	for _, a := range c.areas {
		if a.Name == name {
			return a, true
		}
	}
	return Area{}, false
}

// AreaNames returns the area names in catalog order.
func (c *Catalog) AreaNames() []string {
	names := make([]string, 0, len(c.areas))
	for _, a := range c.areas {
		names = append(names, a.Name)
	}
	return names
}
