package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// CongestionLevel is the coarse crowding classification, totally ordered
// Low < Medium < High. The numeric values double as area scoring codes.
type CongestionLevel int

const (
	CongestionLow    CongestionLevel = 1
	CongestionMedium CongestionLevel = 2
	CongestionHigh   CongestionLevel = 3
)

func (l CongestionLevel) String() string {
	switch l {
	case CongestionLow:
		return "Low"
	case CongestionMedium:
		return "Medium"
	case CongestionHigh:
		return "High"
	}
	return "Unknown"
}

// MarshalJSON emits the level as its name so the wire format matches the
// original service ("Low"/"Medium"/"High").
func (l CongestionLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts the level name.
func (l *CongestionLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Low":
		*l = CongestionLow
	case "Medium":
		*l = CongestionMedium
	case "High":
		*l = CongestionHigh
	default:
		return fmt.Errorf("invalid congestion level %q", s)
	}
	return nil
}

// LocationCongestion is the instantaneous congestion estimate for one
// location. Produced per request, never stored beyond snapshots.
type LocationCongestion struct {
	Location          string            `json:"location"`
	TransportType     TransportType     `json:"transport_type"`
	CurrentFootfall   int               `json:"current_footfall"`
	BaseDailyFootfall int               `json:"base_daily_footfall"`
	Level             CongestionLevel   `json:"congestion_level"`
	Hour              int               `json:"current_hour"`
	Statistics        *SeriesStatistics `json:"statistics,omitempty"`
	Timestamp         time.Time         `json:"timestamp"`
}

// AreaComponent is the per-member entry inside an area estimate.
type AreaComponent struct {
	Location      string          `json:"location"`
	TransportType TransportType   `json:"type"`
	Footfall      int             `json:"footfall"`
	Level         CongestionLevel `json:"congestion"`
}

// AreaCongestion is the combined estimate for one area. Score is the mean of
// the component level codes (1-3), rounded to two decimals for reporting;
// OverallLevel is derived from the unrounded mean.
type AreaCongestion struct {
	Area         string          `json:"area"`
	OverallLevel CongestionLevel `json:"overall_congestion"`
	Score        float64         `json:"congestion_score"`
	Hour         int             `json:"current_hour"`
	Timestamp    time.Time       `json:"timestamp"`
	Components   []AreaComponent `json:"components"`
}
