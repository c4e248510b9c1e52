package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kokualaw/expunge-api/api"
	"github.com/kokualaw/expunge-api/config"
)

// metricsSummaryHandler returns aggregated request metrics with
// durations rendered in milliseconds
func metricsSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary := api.GetMetrics().Summary()

	routes := make([]map[string]interface{}, len(summary.Routes))
	for i, route := range summary.Routes {
		routes[i] = map[string]interface{}{
			"method":      route.Method,
			"path":        route.Path,
			"count":       route.Count,
			"errorCount":  route.ErrorCount,
			"avgTime":     route.AvgTime.Milliseconds(),
			"minTime":     route.MinTime.Milliseconds(),
			"maxTime":     route.MaxTime.Milliseconds(),
			"lastRequest": route.LastRequest,
		}
	}

	b, err := json.Marshal(map[string]interface{}{
		"totalRequests": summary.TotalRequests,
		"totalErrors":   summary.TotalErrors,
		"windowStart":   summary.WindowStart,
		"routes":        routes,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
