/*
Package score converts a raw Forward nat-score plus a composition-bias
correction into the final reportable statistics of spec.md §4.6: a bit
score, a shifted-exponential-tail ln P-value (esl_exp_logsurv), a
P-value, and an E-value against a database size. Grounded on spec.md
§4.6's final-scoring block; the shifted-exponential survival function is
backed by gonum.org/v1/gonum/stat/distuv.Exponential rather than a
hand-written tail.
*/
package score
