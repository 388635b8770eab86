// Copyright (c) 2021 NETWAYS GmbH
package types

// AlarmsDocument is the response of /api/v1/alarms
//
// See https://code.vmware.com/apis/1083/nsx-t method_GetAlarms
type AlarmsDocument struct {
	Results     []Alarm `json:"results"`
	ResultCount int64   `json:"result_count"`
}

// Alarm is one open alarm reported by NSX-T
type Alarm struct {
	ID                   string `json:"id"`
	Severity             string `json:"severity"` // LOW, MEDIUM, HIGH, CRITICAL
	Status               string `json:"status"`
	CreateTime           int64  `json:"_create_time"` // epoch milliseconds
	NodeDisplayName      string `json:"node_display_name"`
	FeatureDisplayName   string `json:"feature_display_name"`
	EventTypeDisplayName string `json:"event_type_display_name"`
	Summary              string `json:"summary"`
}
