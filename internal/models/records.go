package models

// Normalized output records, one per data kind. Field names are the stable
// documented shape returned to MCP clients; nullable numerics use pointers so
// an unknown value serializes as JSON null rather than zero.

// Earnings is a single normalized earnings-calendar entry.
//
// Surprise fields are derived: surprise = actual - estimate when both are
// present, surprisePercent additionally requires a non-zero estimate. The
// same rule is applied to EPS and revenue.
type Earnings struct {
	Symbol                 string   `json:"symbol"`
	Date                   string   `json:"date"`
	Quarter                string   `json:"quarter"` // rendered as "Q<n>"
	Year                   int      `json:"year"`
	Time                   string   `json:"time"` // "bmo", "amc", "dmh" or "unknown"
	EpsActual              *float64 `json:"epsActual"`
	EpsEstimate            *float64 `json:"epsEstimate"`
	EpsSurprise            *float64 `json:"epsSurprise"`
	EpsSurprisePercent     *float64 `json:"epsSurprisePercent"`
	RevenueActual          *float64 `json:"revenueActual"`
	RevenueEstimate        *float64 `json:"revenueEstimate"`
	RevenueSurprise        *float64 `json:"revenueSurprise"`
	RevenueSurprisePercent *float64 `json:"revenueSurprisePercent"`
}

// Quote is a normalized real-time quote for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"currentPrice"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percentChange"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previousClose"`
	Timestamp     int64   `json:"timestamp"`
}

// News is a normalized company-news article.
type News struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Related  string `json:"related"`
	Datetime int64  `json:"datetime"`
}

// Profile is a normalized company profile. Text fields default to empty
// string and numeric fields to zero when the provider omits them.
type Profile struct {
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	Exchange          string  `json:"exchange"`
	Industry          string  `json:"industry"`
	Country           string  `json:"country"`
	Currency          string  `json:"currency"`
	MarketCap         float64 `json:"marketCapitalization"`
	SharesOutstanding float64 `json:"shareOutstanding"`
	IPODate           string  `json:"ipoDate"`
	Phone             string  `json:"phone"`
	WebURL            string  `json:"weburl"`
	Logo              string  `json:"logo"`
}

// Option contract sides.
const (
	OptionTypeCall = "call"
	OptionTypePut  = "put"
)

// OptionContract is a normalized option contract. Type is assigned from the
// call/put bucket the contract came from, not from the raw record. A zero
// bid or ask means "no quote" and is reported as null; each Greek is
// independently nullable.
type OptionContract struct {
	ContractName      string   `json:"contractName"`
	Type              string   `json:"type"` // OptionTypeCall or OptionTypePut
	Strike            float64  `json:"strike"`
	ExpirationDate    string   `json:"expirationDate"`
	LastPrice         float64  `json:"lastPrice"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	Volume            float64  `json:"volume"`
	OpenInterest      float64  `json:"openInterest"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
	Delta             *float64 `json:"delta"`
	Gamma             *float64 `json:"gamma"`
	Theta             *float64 `json:"theta"`
	Vega              *float64 `json:"vega"`
	InTheMoney        bool     `json:"inTheMoney"`
}

// ExpirationSummary describes one expiration bucket of an options chain
// without listing its contracts. OptionsCount falls back to
// CallCount + PutCount when the provider omits the aggregate.
type ExpirationSummary struct {
	ExpirationDate   string  `json:"expirationDate"`
	OptionsCount     int     `json:"optionsCount"`
	CallCount        int     `json:"callCount"`
	PutCount         int     `json:"putCount"`
	CallVolume       float64 `json:"callVolume"`
	PutVolume        float64 `json:"putVolume"`
	CallOpenInterest float64 `json:"callOpenInterest"`
	PutOpenInterest  float64 `json:"putOpenInterest"`
}
