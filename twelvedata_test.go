package clubfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTwelveDataServer serves canned responses per symbol.
func newTwelveDataServer(t *testing.T, responses map[string]string) *TwelveData {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		body, ok := responses[symbol]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return &TwelveData{client: server.Client(), base: server.URL, apiKey: "test-key"}
}

func TestTwelveData_Price(t *testing.T) {
	td := newTwelveDataServer(t, map[string]string{
		"AAPL": `{"price": "178.72000"}`,
		"MC":   `{"price": 645.3}`,
		"XXXX": `{"code": 429, "message": "You have run out of API credits", "status": "error"}`,
	})
	ctx := context.Background()

	tests := []struct {
		ticker  string
		want    float64
		wantErr bool
	}{
		{ticker: "AAPL", want: 178.72},
		{ticker: "aapl ", want: 178.72}, // cleaned to upper case
		{ticker: "MC", want: 645.3},
		{ticker: "XXXX", wantErr: true}, // rate limited
		{ticker: "NOPE", wantErr: true}, // unknown symbol
	}
	for _, tc := range tests {
		got, err := td.Price(ctx, tc.ticker)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Price(%q) = %v, want an error", tc.ticker, got)
			}
			if got != 0 {
				t.Errorf("Price(%q) = %v on error, want the 0 sentinel", tc.ticker, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Price(%q): %v", tc.ticker, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Price(%q) = %v, want %v", tc.ticker, got, tc.want)
		}
	}
}
