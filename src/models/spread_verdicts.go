package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type SpreadVerdicts []SpreadVerdict

func (verdicts SpreadVerdicts) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetHeader([]string{"Ticker", "Type", "Stock Price", "Strike", "Near Expiry", "Far Expiry", "Net Credit", "Net Theta", "IV Diff", "Near IV", "Far IV"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	display.WriteString("Calendar Spread Opportunities:\n")

	for _, v := range verdicts {
		stockPrice := fmt.Sprintf("$%s", p.Sprintf("%.2f", v.UnderlyingPrice))
		strike := fmt.Sprintf("$%s", p.Sprintf("%.2f", v.Spread.Strike))
		netCredit := fmt.Sprintf("$%.2f", v.NetCredit)
		netTheta := fmt.Sprintf("%.4f", v.NetTheta)
		ivDiff := fmt.Sprintf("%.2f%%", v.IVDifferential*100)
		nearIV := fmt.Sprintf("%.2f%%", v.Spread.NearLeg.ImpliedVolatility*100)
		farIV := fmt.Sprintf("%.2f%%", v.Spread.FarLeg.ImpliedVolatility*100)

		table.Append([]string{
			v.Spread.Ticker.String(),
			string(v.Spread.OptionType),
			stockPrice,
			strike,
			v.Spread.NearLeg.ExpirationDate(),
			v.Spread.FarLeg.ExpirationDate(),
			netCredit,
			netTheta,
			ivDiff,
			nearIV,
			farIV,
		})
	}

	table.Render()
	return display.String()
}

func (verdicts SpreadVerdicts) NetCredits() []float64 {
	credits := make([]float64, 0, len(verdicts))
	for _, v := range verdicts {
		credits = append(credits, v.NetCredit)
	}

	return credits
}

func (verdicts SpreadVerdicts) IVDifferentials() []float64 {
	diffs := make([]float64, 0, len(verdicts))
	for _, v := range verdicts {
		diffs = append(diffs, v.IVDifferential)
	}

	return diffs
}

func (verdicts SpreadVerdicts) ToDTO() []*SpreadVerdictDTO {
	dtos := make([]*SpreadVerdictDTO, 0, len(verdicts))
	for _, v := range verdicts {
		dtos = append(dtos, v.ToDTO())
	}

	return dtos
}
