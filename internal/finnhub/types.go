package finnhub

// Raw response shapes as the provider returns them. Fields may be missing or
// null and are never handed to callers directly; each shape is consumed by
// its normalizer in internal/normalize. Unknown extra fields are ignored by
// the JSON decoder, so provider additions do not break decoding.

// RawEarnings is one entry of the earnings calendar.
type RawEarnings struct {
	Symbol          string   `json:"symbol"`
	Date            string   `json:"date"`
	Quarter         int      `json:"quarter"`
	Year            int      `json:"year"`
	Hour            string   `json:"hour"` // "bmo", "amc", "dmh" or empty
	EpsActual       *float64 `json:"epsActual"`
	EpsEstimate     *float64 `json:"epsEstimate"`
	RevenueActual   *float64 `json:"revenueActual"`
	RevenueEstimate *float64 `json:"revenueEstimate"`
}

// EarningsCalendarResponse wraps the earnings calendar list.
type EarningsCalendarResponse struct {
	EarningsCalendar []RawEarnings `json:"earningsCalendar"`
}

// RawQuote is the short-keyed quote record. The provider returns an all-zero
// record for symbols it has no data for; pc/c doubling as the existence
// signal is part of the upstream contract.
type RawQuote struct {
	C  float64  `json:"c"`  // current price
	D  *float64 `json:"d"`  // change
	DP *float64 `json:"dp"` // percent change
	H  float64  `json:"h"`  // day high
	L  float64  `json:"l"`  // day low
	O  float64  `json:"o"`  // day open
	PC float64  `json:"pc"` // previous close
	T  int64    `json:"t"`  // unix seconds
}

// RawNews is one company-news article. The provider ships the headline under
// a misspelled key.
type RawNews struct {
	ID       int64  `json:"id"`
	Headine  string `json:"headine"` // sic, provider misspelling
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Related  string `json:"related"`
	Datetime int64  `json:"datetime"`
}

// RawProfile is the company profile record. Several fields exist twice, a
// primary key and a legacy one; the normalizer prefers the primary.
type RawProfile struct {
	Ticker               string  `json:"ticker"`
	Name                 string  `json:"name"`
	Exchange             string  `json:"exchange"`
	FinnhubIndustry      string  `json:"finnhubIndustry"`
	Industry             string  `json:"industry"` // legacy
	Country              string  `json:"country"`
	Currency             string  `json:"currency"`
	MarketCapitalization float64 `json:"marketCapitalization"`
	ShareOutstanding     float64 `json:"shareOutstanding"`
	IPO                  string  `json:"ipo"`
	IPODate              string  `json:"ipoDate"` // legacy
	Phone                string  `json:"phone"`
	PhoneNumber          string  `json:"phoneNumber"` // legacy
	WebURL               string  `json:"weburl"`
	Logo                 string  `json:"logo"`
	LogoURL              string  `json:"logoUrl"` // legacy
}

// RawOptionContract is one option contract. The side (call/put) is not on
// the record; it is implied by the bucket the contract sits in.
type RawOptionContract struct {
	ContractName      string   `json:"contractName"`
	Strike            float64  `json:"strike"`
	ExpirationDate    string   `json:"expirationDate"`
	LastPrice         float64  `json:"lastPrice"`
	Bid               float64  `json:"bid"` // zero means no quote
	Ask               float64  `json:"ask"` // zero means no quote
	Volume            float64  `json:"volume"`
	OpenInterest      float64  `json:"openInterest"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
	Delta             *float64 `json:"delta"`
	Gamma             *float64 `json:"gamma"`
	Theta             *float64 `json:"theta"`
	Vega              *float64 `json:"vega"`
	InTheMoney        bool     `json:"inTheMoney"`
}

// RawOptionSides holds the provider's call/put segregation.
type RawOptionSides struct {
	Call []RawOptionContract `json:"CALL"`
	Put  []RawOptionContract `json:"PUT"`
}

// RawExpirationBucket groups the contracts sharing one expiration date.
// OptionsCount is an optional aggregate and may be zero even when contracts
// are present.
type RawExpirationBucket struct {
	ExpirationDate   string         `json:"expirationDate"`
	OptionsCount     int            `json:"optionsCount"`
	CallVolume       float64        `json:"callVolume"`
	PutVolume        float64        `json:"putVolume"`
	CallOpenInterest float64        `json:"callOpenInterest"`
	PutOpenInterest  float64        `json:"putOpenInterest"`
	Options          RawOptionSides `json:"options"`
}

// OptionChainResponse wraps the option-chain endpoint response.
type OptionChainResponse struct {
	Code           string                `json:"code"`
	Exchange       string                `json:"exchange"`
	LastTradeDate  string                `json:"lastTradeDate"`
	LastTradePrice float64               `json:"lastTradePrice"`
	Data           []RawExpirationBucket `json:"data"`
}
