package source

// Status is the per-source outcome recorded alongside the data.
type Status string

const (
	// StatusOK means the live fetch succeeded.
	StatusOK Status = "ok"
	// StatusError means every fetch attempt failed; mock data is shown.
	StatusError Status = "error"
	// StatusMock means the source was never configured; mock data is shown.
	StatusMock Status = "mock"
	// StatusDisabled means the source is configured but switched off.
	StatusDisabled Status = "disabled"
)

// Source names, in the fixed aggregation order.
const (
	NameIncidents   = "incidents"
	NameUptime      = "uptime"
	NamePerformance = "performance"
	NameAutomation  = "automation"
	NameAudit       = "audit"
	NameVulnScan    = "vulnscan"
)

// Names returns all source names in aggregation order.
func Names() []string {
	return []string{NameIncidents, NameUptime, NamePerformance, NameAutomation, NameAudit, NameVulnScan}
}

// TimeLayout is the timestamp format used throughout the output document.
const TimeLayout = "2006-01-02T15:04:05Z"
