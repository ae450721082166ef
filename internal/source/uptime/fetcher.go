// Package uptime fetches host availability from the uptime monitor. The
// backend answers with JSON on newer deployments and a plain HTML status
// table on older ones, so parsing tries JSON first and falls back to
// scraping the table. The HTML path is best-effort structural extraction
// from unversioned markup; schema drift there is an expected failure mode.
package uptime

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"statusboard-srv/config"
	"statusboard-srv/internal/source"
	"statusboard-srv/pkg/httpclient"
	"statusboard-srv/pkg/log"
	"statusboard-srv/pkg/retry"
)

const hostPrefix = "srv-"

// Fetcher pulls host up/down state and reduces it to availability counts.
type Fetcher struct {
	cfg    config.UptimeConfig
	client *httpclient.Client
	logger log.Logger

	now func() time.Time
}

// New creates an uptime-monitor fetcher.
func New(cfg config.UptimeConfig, client *httpclient.Client, logger log.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, client: client, logger: logger, now: time.Now}
}

type uptimePayload struct {
	Servers []struct {
		Hostname string `json:"hostname"`
		Status   string `json:"status"`
		LastSeen string `json:"last_seen"`
	} `json:"servers"`
}

// Fetch returns the normalized availability summary.
func (f *Fetcher) Fetch(ctx context.Context) (*source.UptimeResult, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, retry.Permanent(err)
	}

	var auth *httpclient.BasicAuth
	if f.cfg.Username != "" {
		auth = &httpclient.BasicAuth{Username: f.cfg.Username, Password: f.cfg.Password}
	}

	body, err := f.client.Get(ctx, f.cfg.URL, auth)
	if err != nil {
		return nil, err
	}

	counts, err := f.parseJSON(body)
	if err != nil {
		f.logger.Debugf(ctx, "uptime: JSON parse failed (%v), trying HTML table", err)
		counts, err = f.parseHTML(body)
		if err != nil {
			return nil, err
		}
	}

	return &source.UptimeResult{
		Servers: counts,
		// Filesystem alerts come from a separate agent feed that is not
		// exposed through the status endpoint.
		Filesystem: source.FilesystemStatus{Alerts: 0, AlertList: []source.FilesystemAlert{}},
	}, nil
}

func (f *Fetcher) parseJSON(body string) (source.ServerCounts, error) {
	var payload uptimePayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return source.ServerCounts{}, err
	}

	counts := source.ServerCounts{DownList: []source.DownServer{}}
	for _, srv := range payload.Servers {
		switch strings.ToLower(srv.Status) {
		case "up":
			counts.Up++
		case "down":
			counts.Down++
			since := srv.LastSeen
			if since == "" {
				since = source.Timestamp(f.now())
			}
			counts.DownList = append(counts.DownList, source.DownServer{Name: srv.Hostname, Since: since})
		}
	}
	counts.Total = counts.Up + counts.Down
	return counts, nil
}

// parseHTML scrapes the legacy status table: one row per host, a cell with
// the hostname and a later cell with UP or DOWN.
func (f *Fetcher) parseHTML(body string) (source.ServerCounts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return source.ServerCounts{}, err
	}

	counts := source.ServerCounts{DownList: []source.DownServer{}}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var name, status string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			if name == "" && strings.HasPrefix(text, hostPrefix) {
				name = text
				return
			}
			upper := strings.ToUpper(text)
			if status == "" && (upper == "UP" || upper == "DOWN") {
				status = upper
			}
		})
		if name == "" || status == "" {
			return
		}
		if status == "UP" {
			counts.Up++
			return
		}
		counts.Down++
		counts.DownList = append(counts.DownList, source.DownServer{
			Name: name,
			// The table carries no outage timestamp; stamp the fetch time.
			Since: source.Timestamp(f.now()),
		})
	})

	counts.Total = counts.Up + counts.Down
	if counts.Total == 0 {
		return source.ServerCounts{}, errors.New("uptime: no server rows found in status page")
	}
	return counts, nil
}
