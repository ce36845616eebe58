package models

// SpreadVerdictDTO flattens a verdict into one CSV row.
type SpreadVerdictDTO struct {
	Ticker         string  `csv:"ticker" json:"ticker"`
	OptionType     string  `csv:"option_type" json:"option_type"`
	StockPrice     float64 `csv:"stock_price" json:"stock_price"`
	Strike         float64 `csv:"strike" json:"strike"`
	NearExpiry     string  `csv:"near_expiry" json:"near_expiry"`
	FarExpiry      string  `csv:"far_expiry" json:"far_expiry"`
	NetCredit      float64 `csv:"net_credit" json:"net_credit"`
	NetTheta       float64 `csv:"net_theta" json:"net_theta"`
	IVDifferential float64 `csv:"iv_differential" json:"iv_differential"`
	NearIV         float64 `csv:"near_iv" json:"near_iv"`
	FarIV          float64 `csv:"far_iv" json:"far_iv"`
	Passed         bool    `csv:"passed" json:"passed"`
	FailureReason  string  `csv:"failure_reason" json:"failure_reason"`
}

func (v SpreadVerdict) ToDTO() *SpreadVerdictDTO {
	return &SpreadVerdictDTO{
		Ticker:         v.Spread.Ticker.String(),
		OptionType:     string(v.Spread.OptionType),
		StockPrice:     v.UnderlyingPrice,
		Strike:         v.Spread.Strike,
		NearExpiry:     v.Spread.NearLeg.ExpirationDate(),
		FarExpiry:      v.Spread.FarLeg.ExpirationDate(),
		NetCredit:      v.NetCredit,
		NetTheta:       v.NetTheta,
		IVDifferential: v.IVDifferential,
		NearIV:         v.Spread.NearLeg.ImpliedVolatility,
		FarIV:          v.Spread.FarLeg.ImpliedVolatility,
		Passed:         v.Passed,
		FailureReason:  v.FailureReason.String(),
	}
}
