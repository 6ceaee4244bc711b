package domain

// DateLayout is the wire format for series dates.
const DateLayout = "2006-01-02"

// FootfallEntry is one day of synthesized footfall. Field names follow the
// Prophet-style ds/y records the data-generator emits.
type FootfallEntry struct {
	Date  string `json:"ds"`
	Value int    `json:"y"`
}

// FootfallSeries is a chronologically ascending daily series, one entry per
// day with no gaps. Generated fresh per request and never persisted.
type FootfallSeries []FootfallEntry

// SeriesStatistics summarizes a footfall series. Std is the sample standard
// deviation (ddof=1).
type SeriesStatistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Std    float64 `json:"std"`
}

// SeriesResult bundles a generated series with its summary for the
// data-generation API.
type SeriesResult struct {
	Success       bool             `json:"success"`
	Location      string           `json:"location"`
	TransportType TransportType    `json:"transport_type"`
	Days          int              `json:"days"`
	Records       int              `json:"records"`
	Statistics    SeriesStatistics `json:"statistics"`
	Data          FootfallSeries   `json:"data"`
}
