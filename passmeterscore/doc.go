// Package passmeterscore scores a password against a fixed set of
// heuristics.
//
// Evaluate is a pure function: it holds no state between calls and never
// fails, whatever the input. The score is the number of satisfied
// criteria plus small bonuses for length and character variety, capped
// at MaxScore.
package passmeterscore
