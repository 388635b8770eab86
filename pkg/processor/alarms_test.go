// Copyright (c) 2021 NETWAYS GmbH
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/types"
)

func Test_AlarmsEmpty(t *testing.T) {
	result := NewAlarms(nil, nil).BuildResult()

	assert.Equal(t, checkresult.OK, result.Status(), "Test Alarms - no alarms is OK")
	assert.Equal(t, []string{"0 alarms"}, result.Summary, "Test Alarms - empty summary")
	assert.Equal(t, []string{"alarms=0;;;0"}, result.Perfdata, "Test Alarms - empty perfdata")
	assert.Len(t, result.Details, 0, "Test Alarms - no detail lines")
}

func Test_AlarmsMedium(t *testing.T) {
	document := types.AlarmsDocument{}
	unmarshalFile("alarms.json", &document, t)

	result := NewAlarms(document.Results, nil).BuildResult()

	assert.Equal(t, checkresult.Warning, result.Status(), "Test Alarms - MEDIUM alarm is WARNING")
	assert.Equal(t, []string{"1 alarms", "1 medium"}, result.Summary, "Test Alarms - summary breakdown")
	assert.Equal(t, []string{"alarms=1;;;0", "alarms.medium=1;;;0"}, result.Perfdata, "Test Alarms - perfdata breakdown")
	assert.Len(t, result.Details, 1, "Test Alarms - one detail line")
	assert.Contains(t, result.Details[0], "[MEDIUM]", "Test Alarms - detail severity tag")
	assert.Contains(t, result.Details[0], "(node1) Intelligence Health/Storage Latency High - Intelligence node storage latency is high.",
		"Test Alarms - detail line content")
}

func Test_AlarmsHighIsCritical(t *testing.T) {
	alarms := []types.Alarm{
		{Severity: "HIGH", CreateTime: 1619450718000, NodeDisplayName: "node2",
			FeatureDisplayName: "Edge Health", EventTypeDisplayName: "Edge CPU High",
			Summary: "Edge CPU usage is high."},
		{Severity: "LOW", CreateTime: 1619450717000, NodeDisplayName: "node1",
			FeatureDisplayName: "Certificates", EventTypeDisplayName: "Certificate Expiring",
			Summary: "A certificate is about to expire."},
	}

	result := NewAlarms(alarms, nil).BuildResult()

	assert.Equal(t, checkresult.Critical, result.Status(), "Test Alarms - HIGH alarm is CRITICAL")
	assert.Equal(t, []string{"2 alarms", "1 high", "1 low"}, result.Summary, "Test Alarms - severities in encounter order")
	assert.Equal(t, []string{"alarms=2;;;0", "alarms.high=1;;;0", "alarms.low=1;;;0"}, result.Perfdata,
		"Test Alarms - perfdata per severity")
}

func Test_AlarmsExclude(t *testing.T) {
	document := types.AlarmsDocument{}
	unmarshalFile("alarms.json", &document, t)

	excludes, err := CompileExcludes([]string{"M[A-Z]+M"})
	assert.NoError(t, err, "Test Alarms - compile excludes")

	result := NewAlarms(document.Results, excludes).BuildResult()

	assert.Equal(t, checkresult.OK, result.Status(), "Test Alarms - excluded alarm does not affect state")
	// the total count stays untouched by excludes, only the breakdown shrinks
	assert.Equal(t, []string{"1 alarms"}, result.Summary, "Test Alarms - total count ignores excludes")
	assert.Equal(t, []string{"alarms=1;;;0"}, result.Perfdata, "Test Alarms - no per-severity perfdata")
	assert.Len(t, result.Details, 0, "Test Alarms - excluded alarm has no detail line")
}
