// Copyright (c) 2021 NETWAYS GmbH
package processor

import (
	"fmt"
	"regexp"
	"time"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
)

// Check evaluates one API document into a CheckResult
type Check interface {
	BuildResult() *checkresult.CheckResult
}

// CompileExcludes compiles the user supplied exclude patterns once, so they
// can be reused for every record of the document.
func CompileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %v", pattern, err)
		}
		excludes = append(excludes, re)
	}
	return excludes, nil
}

// Excluded reports whether any pattern matches somewhere inside the
// record identifier. Matching is an unanchored search, not a full match.
func Excluded(identifier string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(identifier) {
			return true
		}
	}
	return false
}

// BuildDateTime converts the epoch millisecond timestamps of the API
func BuildDateTime(timestampMs int64) time.Time {
	return time.Unix(timestampMs/1000, (timestampMs%1000)*int64(time.Millisecond))
}

// TimeISO formats an epoch millisecond timestamp as a simple ISO datetime
// string without sub-seconds, in local time.
func TimeISO(timestampMs int64) string {
	return BuildDateTime(timestampMs).Format("2006-01-02 15:04:05")
}
