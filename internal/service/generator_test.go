package service

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/transitpulse/backend/internal/domain"
)

func seededGenerator(seed int64) *Generator {
	return NewGeneratorWithRand(domain.NewCatalog(), rand.New(rand.NewSource(seed)))
}

func TestGenerateSeriesShape(t *testing.T) {
	g := seededGenerator(1)

	for _, days := range []int{1, 7, 90, 365} {
		series, err := g.Generate("Andheri", domain.TransportMetro, days)
		if err != nil {
			t.Fatalf("Generate(%d days): %v", days, err)
		}
		if len(series) != days {
			t.Fatalf("Generate(%d days) returned %d entries", days, len(series))
		}
		for i := 1; i < len(series); i++ {
			// ISO dates compare chronologically as strings.
			if series[i].Date <= series[i-1].Date {
				t.Fatalf("dates not strictly increasing at %d: %s then %s", i, series[i-1].Date, series[i].Date)
			}
			prev, _ := time.Parse(domain.DateLayout, series[i-1].Date)
			cur, _ := time.Parse(domain.DateLayout, series[i].Date)
			if cur.Sub(prev) != 24*time.Hour {
				t.Fatalf("gap between %s and %s", series[i-1].Date, series[i].Date)
			}
		}
	}
}

func TestGenerateFloor(t *testing.T) {
	// Metro base 5000 gives a floor of round(5000*0.2) = 1000, regardless of
	// the location multiplier.
	g := seededGenerator(2)
	series, err := g.Generate("Andheri", domain.TransportMetro, 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, entry := range series {
		if entry.Value < 1000 {
			t.Errorf("value %d on %s below floor 1000", entry.Value, entry.Date)
		}
	}
}

func TestGenerateRejectsBadDayCount(t *testing.T) {
	g := seededGenerator(3)
	for _, days := range []int{0, -1, 366, 10000} {
		_, err := g.Generate("Andheri", domain.TransportMetro, days)
		if !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("Generate(%d days) error = %v, want ErrInvalid", days, err)
		}
	}
}

func TestGenerateRejectsUnknownTransportType(t *testing.T) {
	g := seededGenerator(4)
	_, err := g.Generate("Andheri", domain.TransportType("tram"), 7)
	if !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}

func TestGenerateWeekdayWeekendShape(t *testing.T) {
	// The weekday boost (1.3) against the weekend damping (0.7) dominates the
	// noise over a long window, so the averages must separate.
	g := seededGenerator(5)
	series, err := g.Generate("Andheri", domain.TransportMetro, 364)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var weekdaySum, weekendSum, weekdayN, weekendN float64
	for _, entry := range series {
		date, err := time.Parse(domain.DateLayout, entry.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", entry.Date, err)
		}
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			weekendSum += float64(entry.Value)
			weekendN++
		} else {
			weekdaySum += float64(entry.Value)
			weekdayN++
		}
	}

	weekdayAvg := weekdaySum / weekdayN
	weekendAvg := weekendSum / weekendN
	if weekdayAvg <= weekendAvg {
		t.Errorf("weekday average %.1f not above weekend average %.1f", weekdayAvg, weekendAvg)
	}
}

func TestGenerateUnlistedLocationUsesDefaultMultiplier(t *testing.T) {
	// Same seed, one listed multiplier 1.0 location and one unlisted
	// location: identical draws must give identical series.
	a, err := seededGenerator(6).Generate("DN Nagar", domain.TransportMetro, 30)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := seededGenerator(6).Generate("Imaginary Stop", domain.TransportMetro, 30)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			t.Fatalf("series diverge at %d: %d vs %d", i, a[i].Value, b[i].Value)
		}
	}
}
