// Copyright (c) 2021 NETWAYS GmbH
package types

// ClusterStatusDocument is the response of /api/v1/cluster/status
//
// See https://code.vmware.com/apis/1083/nsx-t method_ReadClusterStatus
type ClusterStatusDocument struct {
	ClusterID             string                `json:"cluster_id"`
	ControlClusterStatus  ControlClusterStatus  `json:"control_cluster_status"`
	MgmtClusterStatus     MgmtClusterStatus     `json:"mgmt_cluster_status"`
	DetailedClusterStatus DetailedClusterStatus `json:"detailed_cluster_status"`
}

// ControlClusterStatus holds the overall state of the control cluster
type ControlClusterStatus struct {
	Status string `json:"status"`
}

// MgmtClusterStatus holds the overall state of the management cluster
type MgmtClusterStatus struct {
	Status       string        `json:"status"`
	OnlineNodes  []ClusterNode `json:"online_nodes"`
	OfflineNodes []ClusterNode `json:"offline_nodes"`
}

// ClusterNode identifies one member of the management cluster
type ClusterNode struct {
	UUID string `json:"uuid"`
	IP   string `json:"ip"`
	FQDN string `json:"fqdn"`
}

// DetailedClusterStatus wraps the per-service group status list
type DetailedClusterStatus struct {
	Groups []ClusterGroup `json:"groups"`
}

// ClusterGroup is the status of one internal service group
type ClusterGroup struct {
	GroupType   string        `json:"group_type"`
	GroupStatus string        `json:"group_status"`
	Members     []GroupMember `json:"members"`
}

// GroupMember is one node's membership in a service group
type GroupMember struct {
	MemberUUID   string `json:"member_uuid"`
	MemberIP     string `json:"member_ip"`
	MemberFQDN   string `json:"member_fqdn"`
	MemberStatus string `json:"member_status"`
}
