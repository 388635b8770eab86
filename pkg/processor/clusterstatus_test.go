// Copyright (c) 2021 NETWAYS GmbH
package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/types"
)

func Test_ClusterStatusStable(t *testing.T) {
	document := types.ClusterStatusDocument{}
	unmarshalFile("cluster-status.json", &document, t)

	result := NewClusterStatus(&document).BuildResult()

	assert.Equal(t, checkresult.OK, result.Status(), "Test ClusterStatus - all areas stable")
	assert.Equal(t, []string{
		"control_cluster_status=STABLE",
		"mgmt_cluster_status=STABLE",
		"control_cluster_status=STABLE",
		"nodes_online=3",
	}, result.Summary, "Test ClusterStatus - summary with duplicated control area")
	assert.Equal(t, []string{"nodes_online=3;;;0"}, result.Perfdata, "Test ClusterStatus - perfdata")
	assert.Len(t, result.Details, 4, "Test ClusterStatus - one detail line per group")
	assert.Equal(t, "[OK] DATASTORE: STABLE - 3 members", result.Details[0], "Test ClusterStatus - group detail line")
}

func Test_ClusterStatusDegradedManagement(t *testing.T) {
	document := types.ClusterStatusDocument{}
	unmarshalFile("cluster-status.json", &document, t)
	document.MgmtClusterStatus.Status = "DEGRADED"

	result := NewClusterStatus(&document).BuildResult()

	assert.Equal(t, checkresult.Critical, result.Status(), "Test ClusterStatus - degraded management is critical")
	assert.Equal(t, "mgmt_cluster_status=DEGRADED", result.Summary[1], "Test ClusterStatus - degraded summary")
	// group detail tags follow the last summarized area (control), which is
	// still stable here
	assert.Equal(t, "[OK] DATASTORE: STABLE - 3 members", result.Details[0],
		"Test ClusterStatus - detail tag derived from last area")
}

func Test_ClusterStatusDegradedControl(t *testing.T) {
	document := types.ClusterStatusDocument{}
	unmarshalFile("cluster-status.json", &document, t)
	document.ControlClusterStatus.Status = "DEGRADED"

	result := NewClusterStatus(&document).BuildResult()

	assert.Equal(t, checkresult.Critical, result.Status(), "Test ClusterStatus - degraded control is critical")
	assert.Equal(t, "[CRITICAL] DATASTORE: STABLE - 3 members", result.Details[0],
		"Test ClusterStatus - detail tag critical when last area unstable")
}
