// Copyright (c) 2021 NETWAYS GmbH
package checkresult

import (
	"strings"
)

// Standard monitoring plugin states.
const (
	OK       = 0
	Warning  = 1
	Critical = 2
	Unknown  = 3

	statePending = -1
)

// StateNames maps plugin states to their display names
var StateNames = map[int]string{
	OK:       "OK",
	Warning:  "WARNING",
	Critical: "CRITICAL",
	Unknown:  "UNKNOWN",
}

// WorstState returns the most severe of the given states.
//
// CRITICAL dominates everything, UNKNOWN dominates WARNING and OK, and a
// state outside the known range resolves to UNKNOWN. Note this is not a
// plain maximum: UNKNOWN has the highest ordinal but must not mask a
// CRITICAL seen anywhere in the set.
func WorstState(states ...int) int {
	if len(states) == 0 {
		return OK
	}

	overall := statePending
	for _, state := range states {
		switch {
		case state == Critical:
			overall = Critical
		case state == Unknown:
			if overall != Critical {
				overall = Unknown
			}
		case state > overall:
			overall = state
		}
	}

	if overall < OK || overall > Unknown {
		overall = Unknown
	}
	return overall
}

// CheckResult collects the output of one check mode.
//
// Summary fragments, detail lines and perfdata tokens are appended while a
// check evaluates its API document. States are collected the same way and
// resolved once through WorstState.
type CheckResult struct {
	Summary  []string
	Details  []string
	Perfdata []string

	states []int
	state  int
}

// NewCheckResult ...
func NewCheckResult() *CheckResult {
	return &CheckResult{state: statePending}
}

// AddState records one partial state for the final aggregation.
func (r *CheckResult) AddState(state int) {
	r.states = append(r.states, state)
}

// Status resolves the aggregated state. The result is cached, so appending
// further states after the first call has no effect.
func (r *CheckResult) Status() int {
	if r.state == statePending {
		r.state = WorstState(r.states...)
	}
	return r.state
}

// Render serializes the result into the plugin wire format:
// the state tag and summary on the first line, detail lines after a blank
// line, perfdata after a pipe.
func (r *CheckResult) Render() string {
	name, ok := StateNames[r.Status()]
	if !ok {
		name = StateNames[Unknown]
	}

	output := "[" + name + "] " + strings.Join(r.Summary, " - ")
	if len(r.Details) > 0 {
		output += "\n\n" + strings.Join(r.Details, "\n")
	}
	if len(r.Perfdata) > 0 {
		output += "\n| " + strings.Join(r.Perfdata, " ")
	}
	return output
}
