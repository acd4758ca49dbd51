// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytesize formats byte counts for humans and parses the same
// notation back, for CLI output and size limits in configuration.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	binaryUnits  = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	decimalUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}
)

// Format renders n with the largest unit that keeps the value at or
// above 1. decimal selects 1000-based units (KB, MB, ...) instead of
// 1024-based units (KiB, MiB, ...). The value is rounded to decimals
// places and trailing zeros are dropped, so Format(1024, false, 2) is
// "1 KiB" and Format(1288490, false, 2) is "1.23 MiB". Counts below
// one unit render as whole bytes: "512 B".
//
// Rounding that reaches the next threshold promotes the unit, so
// 1048575 bytes at one decimal is "1 MiB", not "1024 KiB".
func Format(n int64, decimal bool, decimals int) string {
	threshold := 1024.0
	units := binaryUnits
	if decimal {
		threshold = 1000.0
		units = decimalUnits
	}
	if decimals < 0 {
		decimals = 0
	}

	if math.Abs(float64(n)) < threshold {
		return strconv.FormatInt(n, 10) + " B"
	}

	scale := math.Pow(10, float64(decimals))
	value := float64(n)
	unit := -1
	for {
		value /= threshold
		unit++
		rounded := math.Round(math.Abs(value)*scale) / scale
		if rounded < threshold || unit == len(units)-1 {
			break
		}
	}

	return trimZeros(strconv.FormatFloat(value, 'f', decimals, 64)) + " " + units[unit]
}

// trimZeros removes trailing fractional zeros and a dangling point.
func trimZeros(number string) string {
	if !strings.Contains(number, ".") {
		return number
	}
	number = strings.TrimRight(number, "0")
	return strings.TrimSuffix(number, ".")
}

// unitMultipliers maps lower-cased unit suffixes to byte multipliers.
// Single-letter suffixes are binary, matching common config usage
// ("64k", "32M").
var unitMultipliers = map[string]float64{
	"":    1,
	"b":   1,
	"kb":  1e3,
	"mb":  1e6,
	"gb":  1e9,
	"tb":  1e12,
	"pb":  1e15,
	"kib": 1 << 10,
	"mib": 1 << 20,
	"gib": 1 << 30,
	"tib": 1 << 40,
	"pib": 1 << 50,
	"k":   1 << 10,
	"m":   1 << 20,
	"g":   1 << 30,
	"t":   1 << 40,
}

// Parse reads a size like "512", "64 KiB", "1.5GB", or "32M" and
// returns the byte count. Whitespace between number and unit is
// optional; units are case-insensitive. Fractional results are
// truncated toward zero.
func Parse(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("parsing size: empty string")
	}

	split := len(trimmed)
	for index, character := range trimmed {
		if (character < '0' || character > '9') && character != '.' {
			split = index
			break
		}
	}
	numberPart := trimmed[:split]
	unitPart := strings.ToLower(strings.TrimSpace(trimmed[split:]))

	number, err := strconv.ParseFloat(numberPart, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing size %q: invalid number %q", text, numberPart)
	}
	multiplier, ok := unitMultipliers[unitPart]
	if !ok {
		return 0, fmt.Errorf("parsing size %q: unknown unit %q", text, unitPart)
	}

	result := number * multiplier
	if result > math.MaxInt64 {
		return 0, fmt.Errorf("parsing size %q: overflows int64", text)
	}
	return int64(result), nil
}
