package source

// Static mock payloads shown when a source is unconfigured, disabled, or
// failing. They keep every dashboard card renderable regardless of backend
// availability. Numbers mirror a plausible mid-sized estate.

// Mock returns a full set of mock payloads, one per source.
func Mock() Data {
	return Data{
		Incidents:   MockIncidents(),
		Uptime:      MockUptime(),
		Performance: MockPerf(),
		Automation:  MockAutomation(),
		Audit:       MockAudit(),
		VulnScan:    MockVulnScan(),
	}
}

// MockIncidents returns the incident-tracker fallback payload.
func MockIncidents() *IncidentResult {
	return &IncidentResult{
		Incidents: SeverityCounts{Critical: 2, High: 5, Medium: 12, Low: 8, Total: 27},
		Requests:  RequestCounts{Open: 15, Pending: 7, CompletedToday: 12},
		Changes:   ChangeCounts{Scheduled: 3, InProgress: 1, PendingApproval: 4},
		SLT:       ServiceLevels{IncidentResponse: 94.5, IncidentResolution: 87.2, RequestFulfillment: 91.8},
	}
}

// MockUptime returns the uptime-monitor fallback payload.
func MockUptime() *UptimeResult {
	return &UptimeResult{
		Servers: ServerCounts{
			Total: 45, Up: 43, Down: 2,
			DownList: []DownServer{
				{Name: "srv-app-012", Since: "2025-12-29T08:15:00Z"},
				{Name: "srv-db-003", Since: "2025-12-29T09:45:00Z"},
			},
		},
		Filesystem: FilesystemStatus{
			Alerts: 3,
			AlertList: []FilesystemAlert{
				{Server: "srv-app-007", Mount: "/var/log", Usage: 92},
				{Server: "srv-web-002", Mount: "/opt/data", Usage: 88},
				{Server: "srv-db-001", Mount: "/backup", Usage: 95},
			},
		},
	}
}

// MockPerf returns the performance-monitor fallback payload.
func MockPerf() *PerfResult {
	return &PerfResult{
		CPUAlerts: AlertCounts{
			Critical: 1, Warning: 3,
			AlertList: []ResourceAlert{
				{Node: "web-prod-01", CPU: 98, Severity: "critical"},
				{Node: "app-prod-03", CPU: 85, Severity: "warning"},
				{Node: "db-prod-02", CPU: 82, Severity: "warning"},
				{Node: "cache-01", CPU: 80, Severity: "warning"},
			},
		},
		MemoryAlerts: AlertCounts{
			Critical: 0, Warning: 2,
			AlertList: []ResourceAlert{
				{Node: "app-prod-01", Memory: 87, Severity: "warning"},
				{Node: "web-prod-02", Memory: 84, Severity: "warning"},
			},
		},
	}
}

// MockAutomation returns the automation-runner fallback payload.
func MockAutomation() *AutomationResult {
	return &AutomationResult{
		LastRun: "2025-12-29T06:00:00Z",
		Jobs: JobCounts{
			Total: 24, Passed: 22, Failed: 2,
			FailedList: []FailedJob{
				{Name: "backup-db-weekly", Error: "Connection timeout to db-backup-srv"},
				{Name: "patch-compliance-check", Error: "Host unreachable: srv-app-012"},
			},
		},
	}
}

// MockAudit returns the audit-report fallback payload.
func MockAudit() *AuditResult {
	return &AuditResult{
		LastScan: "2025-12-29T05:00:00Z",
		ConfigChanges: ChangeReport{
			Total: 5,
			Alerts: []ConfigChange{
				{Server: "srv-web-001", File: "/etc/ssh/sshd_config", Change: "PermitRootLogin modified", Time: "2025-12-28T22:30:00Z"},
				{Server: "srv-app-005", File: "/etc/passwd", Change: "New user added: svc_deploy", Time: "2025-12-28T18:15:00Z"},
				{Server: "srv-db-002", File: "/etc/sudoers", Change: "Sudo rule modified", Time: "2025-12-28T14:00:00Z"},
				{Server: "srv-web-003", File: "/etc/hosts", Change: "New entry added", Time: "2025-12-29T01:20:00Z"},
				{Server: "srv-app-001", File: "/etc/crontab", Change: "New cron job added", Time: "2025-12-29T03:45:00Z"},
			},
		},
	}
}

// MockVulnScan returns the vulnerability-scanner fallback payload.
func MockVulnScan() *VulnScanResult {
	return &VulnScanResult{
		LastScan:        "2025-12-29T04:00:00Z",
		Vulnerabilities: VulnCounts{Critical: 3, High: 8, Medium: 24, Low: 45},
		ScanFailures: ScanFailures{
			Total: 4,
			FailedList: []ScanFailure{
				{Host: "srv-db-005", Reason: "Authentication failed", Time: "2025-12-29T04:15:00Z"},
				{Host: "srv-app-009", Reason: "Host unreachable", Time: "2025-12-29T04:18:00Z"},
				{Host: "srv-web-004", Reason: "Scan timeout", Time: "2025-12-29T04:22:00Z"},
				{Host: "srv-cache-02", Reason: "Connection refused", Time: "2025-12-29T04:25:00Z"},
			},
		},
		Compliance: ComplianceCounts{Passed: 89, Failed: 11},
	}
}
