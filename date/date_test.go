package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-08-29", want: New(2026, time.August, 29)},
		{in: "2026-8-9", want: New(2026, time.August, 9)},
		{in: "not-a-date", wantErr: true},
		{in: "2026-13-01", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Normalization(t *testing.T) {
	// Day overflow must roll into the next month.
	got := New(2026, time.January, 32)
	want := New(2026, time.February, 1)
	if got != want {
		t.Errorf("New(2026, January, 32) = %v, want %v", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	day := MustParse("2026-02-14")
	b, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-02-14"` {
		t.Errorf("Marshal = %s, want %q", b, `"2026-02-14"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != day {
		t.Errorf("round trip = %v, want %v", back, day)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParse("2026-03-01")
	b := MustParse("2026-03-02")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("expected %v after %v", b, a)
	}
	if a.Add(1) != b {
		t.Errorf("%v.Add(1) = %v, want %v", a, a.Add(1), b)
	}
}
