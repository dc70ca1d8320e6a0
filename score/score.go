package score

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ln2 is the natural-log-to-bits conversion factor spec.md §4.6 divides
// by: bits = nats / ln(2).
var ln2 = math.Ln2

// Result is the final per-pair scoring block of spec.md §4.6.
type Result struct {
	PreScore float64 // bits, before composition-bias correction
	SeqScore float64 // bits, after composition-bias correction
	LnPValue float64
	PValue   float64
	EValue   float64
}

// Compute converts a raw Forward nat-score (fwdNatSc), a null-model
// background score (null1) and the null2 composition-bias term
// (seqBias, in nats; a positive value lowers SeqScore below PreScore)
// into the bit scores and
// statistical-significance figures of spec.md §4.6. tau and lambda are
// the profile's calibrated shifted-exponential tail parameters;
// nSeqsInDB scales the P-value into an E-value.
func Compute(fwdNatSc, null1, seqBias, tau, lambda float64, nSeqsInDB float64) Result {
	preSc := (fwdNatSc - null1) / ln2
	seqSc := (fwdNatSc - (null1 + seqBias)) / ln2

	lnP := expLogSurv(seqSc, tau, lambda)
	pVal := math.Exp(lnP)
	eVal := pVal * nSeqsInDB

	return Result{
		PreScore: preSc,
		SeqScore: seqSc,
		LnPValue: lnP,
		PValue:   pVal,
		EValue:   eVal,
	}
}

// expLogSurv is esl_exp_logsurv: the natural log of the survival
// function of a shifted exponential with offset tau and rate lambda,
// evaluated at x. For x at or below tau the survival probability is 1
// (ln 1 = 0), matching HMMER's convention that scores below the fit's left edge
// are treated as certain to occur by chance.
func expLogSurv(x, tau, lambda float64) float64 {
	if x <= tau {
		return 0
	}
	dist := distuv.Exponential{Rate: lambda}
	sf := dist.Survival(x - tau)
	if sf <= 0 {
		return math.Inf(-1)
	}
	return math.Log(sf)
}
