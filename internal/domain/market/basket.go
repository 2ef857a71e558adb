package market

// Instrument is one member of the signal basket. The risk class is a
// static configuration input, not something the engine derives.
type Instrument struct {
	Ticker string    `json:"ticker"`
	Name   string    `json:"name"`
	Class  RiskClass `json:"class"`
}

// Basket is the set of instruments the signal engine scans
type Basket []Instrument

// Tickers returns the basket's tickers in order
func (b Basket) Tickers() []string {
	out := make([]string, len(b))
	for i, inst := range b {
		out[i] = inst.Ticker
	}
	return out
}

// DefaultBasket is the sector/international ETF basket used by the
// dashboard. Growth and cyclical exposure counts as risk-on, defensives
// and metals as risk-off; everything else stays neutral.
func DefaultBasket() Basket {
	type entry struct {
		ticker string
		class  RiskClass
	}
	classes := []entry{
		{"XLK", RiskOn}, {"SMH", RiskOn}, {"IGV", RiskOn}, {"ARKK", RiskOn},
		{"XLY", RiskOn}, {"XLF", RiskOn}, {"XLI", RiskOn}, {"XHB", RiskOn},
		{"XRT", RiskOn}, {"KRE", RiskOn}, {"IBB", RiskOn}, {"JETS", RiskOn},
		{"TAN", RiskOn}, {"BITO", RiskOn}, {"KWEB", RiskOn}, {"EEM", RiskOn},

		{"XLP", RiskOff}, {"XLU", RiskOff}, {"XLV", RiskOff},
		{"GLD", RiskOff}, {"SLV", RiskOff}, {"GDX", RiskOff},

		{"XLB", Neutral}, {"XLC", Neutral}, {"XLE", Neutral}, {"XOP", Neutral},
		{"XME", Neutral}, {"KBE", Neutral}, {"IYR", Neutral}, {"IYT", Neutral},
		{"ITA", Neutral}, {"URA", Neutral}, {"PAVE", Neutral}, {"COPX", Neutral},
		{"LIT", Neutral}, {"HACK", Neutral}, {"EWJ", Neutral}, {"MCHI", Neutral},
		{"EWT", Neutral}, {"EFA", Neutral}, {"EWG", Neutral}, {"EWY", Neutral},
		{"EWZ", Neutral}, {"INDA", Neutral},
	}

	basket := make(Basket, 0, len(classes))
	for _, e := range classes {
		name, ok := ETFRegistry[e.ticker]
		if !ok {
			name = IntlRegistry[e.ticker]
		}
		basket = append(basket, Instrument{Ticker: e.ticker, Name: name, Class: e.class})
	}
	return basket
}
