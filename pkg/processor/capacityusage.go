// Copyright (c) 2021 NETWAYS GmbH
package processor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/types"
)

// CapacityUsage evaluates the capacity indicators of NSX-T
type CapacityUsage struct {
	Data     *types.CapacityUsageDocument
	MaxAge   int // minutes the document may lag behind before warning
	Excludes []*regexp.Regexp

	// now allows tests to pin the freshness reference time
	now func() time.Time
}

// NewCapacityUsage ...
func NewCapacityUsage(data *types.CapacityUsageDocument, maxAge int, excludes []*regexp.Regexp) *CapacityUsage {
	return &CapacityUsage{Data: data, MaxAge: maxAge, Excludes: excludes, now: time.Now}
}

// usageIdentifier synthesizes the string the exclude patterns match against
func usageIdentifier(usage types.CapacityUsage) string {
	return usage.Severity + " " + usage.DisplayName
}

// usageState maps the severity of a usage record to a plugin state
func usageState(severity string) int {
	switch severity {
	case "INFO":
		return checkresult.OK
	case "WARNING":
		return checkresult.Warning
	default: // CRITICAL, ERROR
		return checkresult.Critical
	}
}

// BuildResult ...
//
// The freshness of the document is checked against MaxAge regardless of any
// exclude patterns.
func (c *CapacityUsage) BuildResult() *checkresult.CheckResult {
	result := checkresult.NewCheckResult()

	counts := map[string]int{}
	var seen []string

	for _, usage := range c.Data.CapacityUsage {
		if Excluded(usageIdentifier(usage), c.Excludes) {
			continue
		}

		if _, ok := counts[usage.Severity]; !ok {
			seen = append(seen, usage.Severity)
		}
		counts[usage.Severity]++

		state := usageState(usage.Severity)
		result.AddState(state)

		result.Details = append(result.Details, fmt.Sprintf("[%s] [%s] %s: %d of %d (%g%%)",
			checkresult.StateNames[state],
			usage.Severity,
			usage.DisplayName,
			usage.CurrentUsageCount,
			usage.MaxSupportedCount,
			usage.CurrentUsagePercentage))

		result.Perfdata = append(result.Perfdata, fmt.Sprintf("%s=%g%%;%g;%g;0;100",
			strings.ToLower(usage.UsageType),
			usage.CurrentUsagePercentage,
			usage.MinThresholdPercentage,
			usage.MaxThresholdPercentage))
	}

	for _, severity := range seen {
		result.Summary = append(result.Summary,
			fmt.Sprintf("%d %s", counts[severity], strings.ToLower(severity)))
	}
	if len(seen) == 0 {
		result.Summary = append(result.Summary, "no usages")
	}

	lastUpdated := c.Data.MetaInfo.LastUpdatedTimestamp
	result.Summary = append(result.Summary, "last update: "+TimeISO(lastUpdated))

	if c.now().Sub(BuildDateTime(lastUpdated)).Minutes() > float64(c.MaxAge) {
		result.AddState(checkresult.Warning)
		result.Summary = append(result.Summary,
			fmt.Sprintf("last update older than %d minutes", c.MaxAge))
	}

	return result
}
