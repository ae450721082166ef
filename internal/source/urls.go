package source

import (
	"strings"

	"statusboard-srv/config"
)

// DashboardURLs derives per-source click-through URLs from the configured API
// endpoints so dashboard cards can link to each backend's own console. The
// rewrites match the common layouts of the compatible products; a URL without
// a recognized API suffix passes through unchanged.
func DashboardURLs(cfg *config.Config) map[string]string {
	return map[string]string{
		NameIncidents:   strings.Replace(cfg.Incidents.URL, "/api/now/table/incident", "/nav_to.do?uri=incident_list.do", 1),
		NameUptime:      cfg.Uptime.URL,
		NamePerformance: strings.Replace(cfg.Perf.URL, "/api/alerts", "/Orion/Alerts", 1),
		NameAutomation:  strings.Replace(cfg.Automation.URL, "/api/v2/jobs/", "/#/jobs", 1),
		NameAudit:       cfg.Audit.URL,
		NameVulnScan:    strings.Replace(cfg.VulnScan.URL, "/rest/analysis", "/dashboard", 1),
	}
}
