// Copyright (c) 2021 NETWAYS GmbH
package types

// CapacityUsageDocument is the response of /api/v1/capacity/usage
//
// See https://code.vmware.com/apis/1083/nsx-t method_GetProtonCapacityUsage
type CapacityUsageDocument struct {
	CapacityUsage []CapacityUsage  `json:"capacity_usage"`
	MetaInfo      CapacityMetaInfo `json:"meta_info"`
}

// CapacityMetaInfo carries the freshness information of the document
type CapacityMetaInfo struct {
	LastUpdatedTimestamp int64 `json:"last_updated_timestamp"` // epoch milliseconds
}

// CapacityUsage is one resource utilization counter
type CapacityUsage struct {
	UsageType              string  `json:"usage_type"`
	DisplayName            string  `json:"display_name"`
	Severity               string  `json:"severity"` // INFO, WARNING, CRITICAL, ERROR
	CurrentUsageCount      int64   `json:"current_usage_count"`
	MaxSupportedCount      int64   `json:"max_supported_count"`
	CurrentUsagePercentage float64 `json:"current_usage_percentage"`
	MinThresholdPercentage float64 `json:"min_threshold_percentage"`
	MaxThresholdPercentage float64 `json:"max_threshold_percentage"`
}
