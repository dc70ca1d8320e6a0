package search

import "github.com/twlab/cloudfb/viterbi"

// DomainScore is one domain's independent scoring result, per spec.md
// §4.7.
type DomainScore struct {
	Beg, End int // query row range [Beg, End) this domain covers
	Bits     float64
	LnPValue float64
	PValue   float64
	EValue   float64
	Passed   bool // whether this domain cleared Config.Rt3
}

// PairResult is the outcome of one Search call, per spec.md §6's
// "PairResult contains..." paragraph.
//
// Two equivalent namings are exposed for the cloud's bounding box
// per spec.md §9(b): QBeg/QEnd name the query-sequence axis, TBeg/TEnd
// name the profile-model axis. ModelRange/TargetRange below are aliases
// for callers used to either vocabulary (the profile is sometimes called
// the "model", the scored sequence sometimes the "target").
type PairResult struct {
	NatScore float64 // raw Forward nat-score, fwd_natsc
	Null1    float64
	SeqBias  float64
	Bits     float64
	LnPValue float64
	PValue   float64
	EValue   float64

	QBeg, QEnd int // query row range the cloud covers
	TBeg, TEnd int // profile column range the cloud covers

	Traceback *viterbi.Traceback // nil unless the caller asked to keep it

	CloudCells int // cells the edgebound set actually covers
	TotalCells int // (Q+1)(T+1), for reporting the fraction pruned

	Domains []DomainScore // nil unless Config.RunDomains

	// Filtered is true when EValue exceeded Config.EvalCutoff; callers
	// may choose to drop the pair entirely rather than report it.
	Filtered bool
}

// TargetRange returns the query-sequence row range the cloud covers,
// under the "target" naming.
func (r PairResult) TargetRange() (beg, end int) { return r.QBeg, r.QEnd }

// ModelRange returns the profile-model column range the cloud covers,
// under the "model" naming.
func (r PairResult) ModelRange() (beg, end int) { return r.TBeg, r.TEnd }
