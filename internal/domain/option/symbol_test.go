package option

import (
	"testing"
	"time"
)

func TestParseSymbol(t *testing.T) {
	t.Run("call contract", func(t *testing.T) {
		c, ok := ParseSymbol("AAPL260206C00277500")
		if !ok {
			t.Fatal("Expected parse to succeed")
		}
		if c.Underlying != "AAPL" {
			t.Errorf("Expected underlying AAPL, got %s", c.Underlying)
		}
		if c.Type != Call {
			t.Errorf("Expected call, got %s", c.Type)
		}
		want := time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)
		if !c.Expiration.Equal(want) {
			t.Errorf("Expected expiration %s, got %s", want, c.Expiration)
		}
		if c.StrikeFloat() != 277.5 {
			t.Errorf("Expected strike 277.5, got %v", c.StrikeFloat())
		}
	})

	t.Run("put contract", func(t *testing.T) {
		c, ok := ParseSymbol("SPY270115P00450000")
		if !ok {
			t.Fatal("Expected parse to succeed")
		}
		if c.Type != Put {
			t.Errorf("Expected put, got %s", c.Type)
		}
		if c.StrikeFloat() != 450 {
			t.Errorf("Expected strike 450, got %v", c.StrikeFloat())
		}
	})

	t.Run("fractional strike", func(t *testing.T) {
		c, ok := ParseSymbol("XYZ260320C00001125")
		if !ok {
			t.Fatal("Expected parse to succeed")
		}
		if c.Strike.String() != "1.125" {
			t.Errorf("Expected strike 1.125, got %s", c.Strike.String())
		}
	})

	t.Run("malformed symbols rejected", func(t *testing.T) {
		bad := []string{
			"",
			"AAPL",
			"aapl260206C00277500", // lowercase underlying
			"AAPL260206X00277500", // bad side letter
			"AAPL26026C00277500",  // short date
			"AAPL260206C0027750",  // short strike
			"AAPL260206C00277500X",
		}
		for _, s := range bad {
			if _, ok := ParseSymbol(s); ok {
				t.Errorf("Expected %q to be rejected", s)
			}
		}
	})

	t.Run("impossible calendar date rejected", func(t *testing.T) {
		if _, ok := ParseSymbol("AAPL261332C00277500"); ok {
			t.Error("Expected month 13 to be rejected")
		}
		if _, ok := ParseSymbol("AAPL260230C00277500"); ok {
			t.Error("Expected Feb 30 to be rejected")
		}
	})
}

func TestSymbolRoundTrip(t *testing.T) {
	symbols := []string{
		"AAPL260206C00277500",
		"SPY270115P00450000",
		"XYZ260320C00001125",
		"T251219P00022000",
	}
	for _, s := range symbols {
		c, ok := ParseSymbol(s)
		if !ok {
			t.Fatalf("Expected %q to parse", s)
		}
		if got := c.Symbol(); got != s {
			t.Errorf("Round trip mismatch: %q -> %q", s, got)
		}
	}
}
