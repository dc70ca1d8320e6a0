package fwdback

import "errors"

// ErrCloudEmpty is returned by Posterior when a row's total posterior
// mass is zero: no path through that row survived the cloud, and
// downstream null2 normalisation would divide by zero, per spec.md §4.5.
var ErrCloudEmpty = errors.New("fwdback: cloud empty on row")

// ErrScoreMismatch is returned by Posterior when the Forward and
// Backward total scores disagree by more than the configured tolerance,
// a sign of an asymmetric cloud, per spec.md §4.5.
var ErrScoreMismatch = errors.New("fwdback: forward/backward score mismatch")

// DefaultScoreTolerance is the default |fwd_total - bck_total| tolerance
// in nats spec.md §4.5 names (0.01).
const DefaultScoreTolerance = 0.01
