// Copyright (c) 2021 NETWAYS GmbH
package processor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/types"
)

// Alarms evaluates the open alarms reported by NSX-T
type Alarms struct {
	Alarms   []types.Alarm
	Excludes []*regexp.Regexp
}

// NewAlarms ...
func NewAlarms(alarms []types.Alarm, excludes []*regexp.Regexp) *Alarms {
	return &Alarms{Alarms: alarms, Excludes: excludes}
}

// alarmIdentifier synthesizes the string the exclude patterns match against
func alarmIdentifier(alarm types.Alarm) string {
	return alarm.Severity + " " + alarm.NodeDisplayName + " " +
		alarm.FeatureDisplayName + " " + alarm.EventTypeDisplayName
}

// BuildResult ...
//
// Excluded alarms are skipped for detail lines, per-severity counts and the
// state aggregation, while the total alarm count still covers every alarm
// the API returned.
func (a *Alarms) BuildResult() *checkresult.CheckResult {
	result := checkresult.NewCheckResult()

	counts := map[string]int{}
	var seen []string

	for _, alarm := range a.Alarms {
		if Excluded(alarmIdentifier(alarm), a.Excludes) {
			continue
		}

		if _, ok := counts[alarm.Severity]; !ok {
			seen = append(seen, alarm.Severity)
		}
		counts[alarm.Severity]++

		result.Details = append(result.Details, fmt.Sprintf("[%s] (%s) (%s) %s/%s - %s",
			alarm.Severity,
			TimeISO(alarm.CreateTime),
			alarm.NodeDisplayName,
			alarm.FeatureDisplayName,
			alarm.EventTypeDisplayName,
			alarm.Summary))

		state := checkresult.Critical // CRITICAL, HIGH
		if alarm.Severity == "MEDIUM" || alarm.Severity == "LOW" {
			state = checkresult.Warning
		}
		result.AddState(state)
	}

	count := len(a.Alarms)
	result.Summary = append(result.Summary, fmt.Sprintf("%d alarms", count))
	result.Perfdata = append(result.Perfdata, fmt.Sprintf("alarms=%d;;;0", count))

	for _, severity := range seen {
		result.Summary = append(result.Summary,
			fmt.Sprintf("%d %s", counts[severity], strings.ToLower(severity)))
		result.Perfdata = append(result.Perfdata,
			fmt.Sprintf("alarms.%s=%d;;;0", strings.ToLower(severity), counts[severity]))
	}

	return result
}
