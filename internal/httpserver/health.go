package httpserver

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// staleAfter is how old the snapshot may get before health reports it stale.
// Twice the cron cadence leaves room for one slow or skipped run.
const staleAfter = 10 * time.Minute

// healthCheck reports service health and the age of the current snapshot.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	info, err := os.Stat(srv.outputFile)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"service":  "statusboard-srv",
			"snapshot": "missing",
		})
		return
	}

	age := time.Since(info.ModTime())
	status := "healthy"
	code := http.StatusOK
	if age > staleAfter {
		status = "stale"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":           status,
		"service":          "statusboard-srv",
		"snapshot_age_sec": int(age.Seconds()),
		"snapshot_mtime":   info.ModTime().UTC().Format(time.RFC3339),
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"service": "statusboard-srv",
	})
}
