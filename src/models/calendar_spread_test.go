package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestSpread() CalendarSpread {
	return CalendarSpread{
		Ticker:     "AAPL",
		OptionType: Call,
		Strike:     100,
		NearLeg: OptionQuote{
			UnderlyingSymbol:  "AAPL",
			Strike:            100,
			OptionType:        Call,
			Expiration:        time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			Bid:               3.50,
			Ask:               3.60,
			Volume:            500,
			OpenInterest:      1000,
			ImpliedVolatility: 0.35,
			Theta:             -0.08,
		},
		FarLeg: OptionQuote{
			UnderlyingSymbol:  "AAPL",
			Strike:            100,
			OptionType:        Call,
			Expiration:        time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
			Bid:               3.00,
			Ask:               3.20,
			Volume:            300,
			OpenInterest:      800,
			ImpliedVolatility: 0.28,
			Theta:             -0.04,
		},
	}
}

func TestCalendarSpreadMetrics(t *testing.T) {
	spread := newTestSpread()

	t.Run("net credit is near bid minus far ask", func(t *testing.T) {
		assert.InEpsilon(t, 0.30, spread.NetCredit(), 0.001)
	})

	t.Run("iv differential is near minus far", func(t *testing.T) {
		assert.InEpsilon(t, 0.07, spread.IVDifferential(), 0.001)
	})

	t.Run("net theta flips the short near leg", func(t *testing.T) {
		assert.InEpsilon(t, 0.12, spread.NetTheta(), 0.001)
	})

	t.Run("debit spreads report a negative credit", func(t *testing.T) {
		debit := newTestSpread()
		debit.NearLeg.Bid = 2.10
		debit.FarLeg.Ask = 3.15

		assert.InEpsilon(t, -1.05, debit.NetCredit(), 0.001)
	})
}

func TestCalendarSpreadValidate(t *testing.T) {
	t.Run("valid spread", func(t *testing.T) {
		assert.NoError(t, newTestSpread().Validate())
	})

	t.Run("invalid option type", func(t *testing.T) {
		spread := newTestSpread()
		spread.OptionType = "straddle"

		assert.Error(t, spread.Validate())
	})

	t.Run("leg strike mismatch", func(t *testing.T) {
		spread := newTestSpread()
		spread.FarLeg.Strike = 105

		assert.ErrorIs(t, spread.Validate(), InvalidSpreadErr)
	})

	t.Run("leg type mismatch", func(t *testing.T) {
		spread := newTestSpread()
		spread.NearLeg.OptionType = Put

		assert.ErrorIs(t, spread.Validate(), InvalidSpreadErr)
	})

	t.Run("near leg must expire first", func(t *testing.T) {
		spread := newTestSpread()
		spread.NearLeg.Expiration = spread.FarLeg.Expiration

		assert.ErrorIs(t, spread.Validate(), InvalidSpreadErr)
	})
}
