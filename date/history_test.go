package date

import "testing"

func TestHistory_AppendKeepsChronologicalOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2026-03-03"), 103)
	h.Append(MustParse("2026-03-01"), 101)
	h.Append(MustParse("2026-03-02"), 102)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{101, 102, 103}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestHistory_AppendOverwritesSameDay(t *testing.T) {
	var h History[float64]
	day := MustParse("2026-03-01")
	h.Append(day, 100)
	h.Append(day, 105)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day); !ok || v != 105 {
		t.Errorf("Get(%v) = %v, %v; want 105, true", day, v, ok)
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[float64]
	if day, v := h.Latest(); !day.IsZero() || v != 0 {
		t.Errorf("Latest() on empty history = %v, %v; want zero values", day, v)
	}
	h.Append(MustParse("2026-03-01"), 101)
	h.Append(MustParse("2026-03-05"), 105)
	day, v := h.Latest()
	if day != MustParse("2026-03-05") || v != 105 {
		t.Errorf("Latest() = %v, %v; want 2026-03-05, 105", day, v)
	}
}
