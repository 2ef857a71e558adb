package option

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// OCC identifier grammar: underlying letters, YYMMDD expiration,
// C or P, strike in thousandths padded to 8 digits.
// Example: AAPL260206C00277500 -> AAPL 2026-02-06 call 277.50
var symbolPattern = regexp.MustCompile(`^([A-Z]+)(\d{6})([CP])(\d{8})$`)

// ParseSymbol decodes an OCC option identifier. Malformed input returns
// ok=false and is never an error; chain parsing skips such entries.
func ParseSymbol(symbol string) (Contract, bool) {
	m := symbolPattern.FindStringSubmatch(symbol)
	if m == nil {
		return Contract{}, false
	}

	yy, _ := strconv.Atoi(m[2][0:2])
	mm, _ := strconv.Atoi(m[2][2:4])
	dd, _ := strconv.Atoi(m[2][4:6])

	// Two-digit years are always in the 2000s
	exp := time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if int(exp.Month()) != mm || exp.Day() != dd {
		// time.Date normalizes overflow (e.g. month 13), which means
		// the digits were not a real calendar date
		return Contract{}, false
	}

	milli, _ := strconv.ParseInt(m[4], 10, 64)

	c := Contract{
		Underlying: m[1],
		Expiration: exp,
		Type:       Call,
		Strike:     decimal.New(milli, -3),
	}
	if m[3] == "P" {
		c.Type = Put
	}
	return c, true
}

// Symbol re-encodes the contract into its OCC identifier.
// For any contract produced by ParseSymbol this reproduces the input.
func (c Contract) Symbol() string {
	side := "C"
	if c.Type == Put {
		side = "P"
	}
	return fmt.Sprintf("%s%s%s%08d",
		c.Underlying,
		c.Expiration.Format("060102"),
		side,
		c.Strike.Shift(3).IntPart(),
	)
}

// StrikeFloat returns the strike as a float64 for pricing math
func (c Contract) StrikeFloat() float64 {
	return c.Strike.InexactFloat64()
}
