package models

// SpreadVerdict is the filter pipeline's judgement of one candidate spread.
// Every metric is computed regardless of which check failed, so a rejected
// spread still reports its full economics.
type SpreadVerdict struct {
	Spread          CalendarSpread `json:"spread"`
	UnderlyingPrice float64        `json:"underlying_price"`
	NetCredit       float64        `json:"net_credit"`
	IVDifferential  float64        `json:"iv_differential"`
	NetTheta        float64        `json:"net_theta"`
	Passed          bool           `json:"passed"`
	FailureReason   FailureReason  `json:"failure_reason,omitempty"`
}
