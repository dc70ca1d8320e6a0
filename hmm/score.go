package hmm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Score represents a log-odds transition or emission score, in nats.
// NegInf marks an unreachable transition or an emission that can never
// occur, per spec.md §3's "-infinity" sentinel.
type Score float64

// NegInf is the sentinel for an unreachable cell or transition.
var NegInf = Score(math.Inf(-1))

// IsNegInf reports whether s is the unreachable sentinel.
func (s Score) IsNegInf() bool {
	return math.IsInf(float64(s), -1)
}

// ParseScore parses a log-odds score as found in an HMMER/HHsuite model
// file, where "*" conventionally marks an unreachable transition.
func ParseScore(str string) (Score, error) {
	if str == "*" {
		return NegInf, nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return NegInf, fmt.Errorf("hmm: could not parse score %q: %w", str, err)
	}
	return Score(f), nil
}

func (s Score) String() string {
	if s.IsNegInf() {
		return "*"
	}
	return fmt.Sprintf("%v", float64(s))
}

func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Score) UnmarshalJSON(bs []byte) error {
	var str string
	if err := json.Unmarshal(bs, &str); err != nil {
		return err
	}
	v, err := ParseScore(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
