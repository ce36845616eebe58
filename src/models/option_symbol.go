package models

import (
	"fmt"
	"strings"
	"time"
)

type OptionSymbol string

func (s OptionSymbol) NoPrefix() string {
	if strings.HasPrefix(string(s), "O:") {
		return string(s)[2:]
	}

	return string(s)
}

// NewOptionSymbol builds the OCC ticker used by the Polygon options endpoints,
// e.g. O:AAPL240621C00195000.
func NewOptionSymbol(underlying StockSymbol, expiration time.Time, optionType OptionType, strike float64) (OptionSymbol, error) {
	var typeCode string
	switch optionType {
	case Call:
		typeCode = "C"
	case Put:
		typeCode = "P"
	default:
		return "", fmt.Errorf("NewOptionSymbol: invalid option type: %s", optionType)
	}

	year := expiration.Year() % 100
	month := int(expiration.Month())
	day := expiration.Day()

	strikePrice := fmt.Sprintf("%08d", int(strike*1000))

	ticker := fmt.Sprintf("O:%s%02d%02d%02d%s%s", underlying.String(), year, month, day, typeCode, strikePrice)

	return OptionSymbol(ticker), nil
}
