// Package main - dashboard CLI
//
// Usage:
//
//	go run ./cmd/dashboard serve
//	go run ./cmd/dashboard analyze AAPL
//	go run ./cmd/dashboard signals
package main

import (
	"os"

	"github.com/wilsonfong56/ETF-Dashboard/cmd/dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
