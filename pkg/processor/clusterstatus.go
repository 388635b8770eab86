// Copyright (c) 2021 NETWAYS GmbH
package processor

import (
	"fmt"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/checkresult"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/types"
)

// ClusterStatus evaluates the overall NSX-T cluster status
type ClusterStatus struct {
	Data *types.ClusterStatusDocument
}

// NewClusterStatus ...
func NewClusterStatus(data *types.ClusterStatusDocument) *ClusterStatus {
	return &ClusterStatus{Data: data}
}

// clusterAreas returns the status areas in summary order. The control
// cluster area appears twice, matching the upstream plugin's output.
func (c *ClusterStatus) clusterAreas() []struct{ name, status string } {
	return []struct{ name, status string }{
		{"control_cluster_status", c.Data.ControlClusterStatus.Status},
		{"mgmt_cluster_status", c.Data.MgmtClusterStatus.Status},
		{"control_cluster_status", c.Data.ControlClusterStatus.Status},
	}
}

// BuildResult ...
func (c *ClusterStatus) BuildResult() *checkresult.CheckResult {
	result := checkresult.NewCheckResult()

	areas := c.clusterAreas()
	for _, area := range areas {
		result.Summary = append(result.Summary, area.name+"="+area.status)

		state := checkresult.Critical
		if area.status == "STABLE" {
			state = checkresult.OK
		}
		result.AddState(state)
	}

	nodesOnline := len(c.Data.MgmtClusterStatus.OnlineNodes)
	result.Summary = append(result.Summary, fmt.Sprintf("nodes_online=%d", nodesOnline))
	result.Perfdata = append(result.Perfdata, fmt.Sprintf("nodes_online=%d;;;0", nodesOnline))

	// The detail tag is derived from the last summarized area, not from
	// the group's own status. Kept compatible with the upstream plugin.
	lastStatus := areas[len(areas)-1].status
	for _, group := range c.Data.DetailedClusterStatus.Groups {
		state := "CRITICAL"
		if lastStatus == "STABLE" {
			state = "OK"
		}
		result.Details = append(result.Details, fmt.Sprintf("[%s] %s: %s - %d members",
			state, group.GroupType, group.GroupStatus, len(group.Members)))
	}

	return result
}
