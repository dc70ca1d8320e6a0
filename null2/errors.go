package null2

import "errors"

// ErrEmptyRange is returned by Correction when the target or query range
// given is empty: a composition-bias estimate is undefined without at
// least one column to accumulate over.
var ErrEmptyRange = errors.New("null2: empty target or query range")
