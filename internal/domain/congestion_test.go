package domain

import (
	"encoding/json"
	"testing"
)

func TestCongestionLevelOrdering(t *testing.T) {
	if !(CongestionLow < CongestionMedium && CongestionMedium < CongestionHigh) {
		t.Error("congestion levels are not ordered Low < Medium < High")
	}
}

func TestCongestionLevelJSON(t *testing.T) {
	out, err := json.Marshal(CongestionHigh)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"High"` {
		t.Errorf("marshal = %s, want \"High\"", out)
	}

	var level CongestionLevel
	if err := json.Unmarshal([]byte(`"Medium"`), &level); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if level != CongestionMedium {
		t.Errorf("unmarshal = %v, want Medium", level)
	}

	if err := json.Unmarshal([]byte(`"Gridlock"`), &level); err == nil {
		t.Error("unmarshal of invalid level unexpectedly succeeded")
	}
}
