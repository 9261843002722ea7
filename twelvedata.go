package clubfolio

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const twelvedata_api_key = "TWELVEDATA_API_KEY"

var twelvedataApiFlag = flag.String("twelvedata-api-key", "", "Twelve Data API key to use for fetching live prices.\n If missing it will read the environment variable \""+twelvedata_api_key+"\". You can get one at https://twelvedata.com/")

func twelvedataApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *twelvedataApiFlag == "" {
		*twelvedataApiFlag = os.Getenv(twelvedata_api_key)
	}
	return *twelvedataApiFlag
}

// TwelveData fetches live quotes from api.twelvedata.com. It satisfies
// PriceProvider; a failed or rate-limited lookup reports 0 so valuation
// falls back to the holding's cost basis instead of failing.
type TwelveData struct {
	client *http.Client
	base   string
	apiKey string
}

// NewTwelveData returns a client using the api key from the flag or the
// environment, with responses cached on disk until the end of the day.
func NewTwelveData() *TwelveData {
	return &TwelveData{
		client: daily(),
		base:   "https://api.twelvedata.com/price",
		apiKey: twelvedataApiKey(),
	}
}

/*
	{ "price": "178.72000" }

or on error:

	{ "code": 429, "message": "You have run out of API credits...", "status": "error" }
*/
func (t *TwelveData) Price(ctx context.Context, ticker string) (float64, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	addr := t.base + "?symbol=" + url.QueryEscape(symbol) + "&apikey=" + url.QueryEscape(t.apiKey)

	var jobj any
	if err := jwget(ctx, t.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	jval, err := jsonpath.Get("$.price", jobj)
	if err != nil {
		// no price field: probably a rate limit or an unknown symbol
		if code, cerr := jsonpath.Get("$.code", jobj); cerr == nil {
			return 0, fmt.Errorf("no quote for %q: api code %v", symbol, code)
		}
		return 0, fmt.Errorf("no quote for %q: %w", symbol, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read price of %q: invalid string %q: %w", symbol, v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("cannot read price of %q: not a float or string: %v", symbol, jval)
	}
}
