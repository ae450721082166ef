// Package source defines the normalized output schema of the aggregation
// pipeline: one fixed result structure per monitoring source, the per-source
// fetch status entries, and the snapshot document the dashboard polls.
package source

import "time"

// FetchStatus records one source's outcome for a run.
type FetchStatus struct {
	Status      Status     `json:"status"`
	LastUpdated *time.Time `json:"lastUpdated"`
	Error       string     `json:"error,omitempty"`
}

// Snapshot is the whole output document, rewritten wholesale every run.
// Every configured source name appears in both Sources and FetchStatus.
type Snapshot struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	RunID       string                 `json:"runId"`
	SourceURLs  map[string]string      `json:"sourceUrls"`
	Sources     Data                   `json:"sources"`
	FetchStatus map[string]FetchStatus `json:"fetchStatus"`
}

// Data holds one typed entry per source. Entries are never nil after a run:
// a failed or disabled source falls back to its mock payload.
type Data struct {
	Incidents   *IncidentResult   `json:"incidents"`
	Uptime      *UptimeResult     `json:"uptime"`
	Performance *PerfResult       `json:"performance"`
	Automation  *AutomationResult `json:"automation"`
	Audit       *AuditResult      `json:"audit"`
	VulnScan    *VulnScanResult   `json:"vulnscan"`
}

// Timestamp formats t in the document's timestamp layout (UTC).
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// --- incident tracker ---

// SeverityCounts buckets incidents by priority.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

// RequestCounts summarizes service requests.
type RequestCounts struct {
	Open           int `json:"open"`
	Pending        int `json:"pending"`
	CompletedToday int `json:"completed_today"`
}

// ChangeCounts summarizes change tickets.
type ChangeCounts struct {
	Scheduled       int `json:"scheduled"`
	InProgress      int `json:"in_progress"`
	PendingApproval int `json:"pending_approval"`
}

// ServiceLevels holds service-level target percentages.
type ServiceLevels struct {
	IncidentResponse   float64 `json:"incident_response"`
	IncidentResolution float64 `json:"incident_resolution"`
	RequestFulfillment float64 `json:"request_fulfillment"`
}

// IncidentResult is the normalized incident-tracker payload.
type IncidentResult struct {
	Incidents SeverityCounts `json:"incidents"`
	Requests  RequestCounts  `json:"requests"`
	Changes   ChangeCounts   `json:"changes"`
	SLT       ServiceLevels  `json:"slt"`
}

// --- uptime monitor ---

// DownServer is one host currently reported down.
type DownServer struct {
	Name  string `json:"name"`
	Since string `json:"since"`
}

// ServerCounts summarizes host availability.
type ServerCounts struct {
	Total    int          `json:"total"`
	Up       int          `json:"up"`
	Down     int          `json:"down"`
	DownList []DownServer `json:"down_list"`
}

// FilesystemAlert is one filesystem usage alert.
type FilesystemAlert struct {
	Server string `json:"server"`
	Mount  string `json:"mount"`
	Usage  int    `json:"usage"`
}

// FilesystemStatus summarizes filesystem alerts.
type FilesystemStatus struct {
	Alerts    int               `json:"alerts"`
	AlertList []FilesystemAlert `json:"alert_list"`
}

// UptimeResult is the normalized uptime-monitor payload.
type UptimeResult struct {
	Servers    ServerCounts     `json:"servers"`
	Filesystem FilesystemStatus `json:"filesystem"`
}

// --- performance monitor ---

// ResourceAlert is one CPU or memory alert.
type ResourceAlert struct {
	Node     string `json:"node"`
	CPU      int    `json:"cpu,omitempty"`
	Memory   int    `json:"memory,omitempty"`
	Severity string `json:"severity"`
}

// AlertCounts summarizes alerts of one resource kind.
type AlertCounts struct {
	Critical  int             `json:"critical"`
	Warning   int             `json:"warning"`
	AlertList []ResourceAlert `json:"alert_list"`
}

// PerfResult is the normalized performance-monitor payload.
type PerfResult struct {
	CPUAlerts    AlertCounts `json:"cpu_alerts"`
	MemoryAlerts AlertCounts `json:"memory_alerts"`
}

// --- automation runner ---

// FailedJob is one failed automation job.
type FailedJob struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// JobCounts summarizes job outcomes over the reporting window.
type JobCounts struct {
	Total      int         `json:"total"`
	Passed     int         `json:"passed"`
	Failed     int         `json:"failed"`
	FailedList []FailedJob `json:"failed_list"`
}

// AutomationResult is the normalized automation-runner payload.
type AutomationResult struct {
	LastRun string    `json:"last_run"`
	Jobs    JobCounts `json:"jobs"`
}

// --- audit report ---

// ConfigChange is one detected configuration change.
type ConfigChange struct {
	Server string `json:"server"`
	File   string `json:"file"`
	Change string `json:"change"`
	Time   string `json:"time"`
}

// ChangeReport summarizes detected configuration changes.
type ChangeReport struct {
	Total  int            `json:"total"`
	Alerts []ConfigChange `json:"alerts"`
}

// AuditResult is the normalized audit-report payload.
type AuditResult struct {
	LastScan      string       `json:"last_scan"`
	ConfigChanges ChangeReport `json:"config_changes"`
}

// --- vulnerability scanner ---

// VulnCounts buckets findings by severity.
type VulnCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// ScanFailure is one host the scanner could not assess.
type ScanFailure struct {
	Host   string `json:"host"`
	Reason string `json:"reason"`
	Time   string `json:"time"`
}

// ScanFailures summarizes scan failures.
type ScanFailures struct {
	Total      int           `json:"total"`
	FailedList []ScanFailure `json:"failed_list"`
}

// ComplianceCounts summarizes compliance check outcomes.
type ComplianceCounts struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// VulnScanResult is the normalized vulnerability-scanner payload.
type VulnScanResult struct {
	LastScan        string           `json:"last_scan"`
	Vulnerabilities VulnCounts       `json:"vulnerabilities"`
	ScanFailures    ScanFailures     `json:"scan_failures"`
	Compliance      ComplianceCounts `json:"compliance"`
}
