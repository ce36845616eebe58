package models

type FailureReason string

const (
	ReasonNone               FailureReason = ""
	ReasonIlliquid           FailureReason = "illiquid"
	ReasonInsufficientCredit FailureReason = "insufficient_credit"
	ReasonIVNotFavorable     FailureReason = "iv_not_favorable"
	ReasonNonPositiveTheta   FailureReason = "non_positive_theta"
)

func (r FailureReason) String() string {
	return string(r)
}
