package httpserver

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (srv *HTTPServer) mapHandlers() {
	// Static dashboard, no auth; everything served here is read-only
	srv.gin.StaticFile("/", filepath.Join(srv.webDir, "index.html"))
	srv.gin.StaticFile("/app.js", filepath.Join(srv.webDir, "app.js"))
	srv.gin.StaticFile("/style.css", filepath.Join(srv.webDir, "style.css"))

	// Snapshot document; the dashboard polls this every 60 seconds
	srv.gin.GET("/data.json", srv.snapshot)

	// Health endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Prometheus metrics
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// snapshot serves the current output document. A missing file is a normal
// transient state (first run not finished yet); the dashboard retries on its
// own schedule.
func (srv *HTTPServer) snapshot(c *gin.Context) {
	data, err := os.ReadFile(srv.outputFile)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not generated yet"})
			return
		}
		srv.logger.Errorf(c.Request.Context(), "httpserver: read snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "snapshot unreadable"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
