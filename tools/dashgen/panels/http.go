package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

const requestDuration = "medwatch_http_request_duration_seconds"

// RequestRate shows HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "HTTP requests per second", ThirdWidth).
		WithTarget(PromQuery(`medwatch:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles shows p50, p95 and p99 request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return series("Latency Percentiles", "HTTP request duration percentiles", ThirdWidth).
		WithTarget(PromQuery(quantile("0.50", requestDuration, ""), "p50", "A")).
		WithTarget(PromQuery(quantile("0.95", requestDuration, ""), "p95", "B")).
		WithTarget(PromQuery(quantile("0.99", requestDuration, ""), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// ErrorRate shows 5xx responses as a share of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx responses as percentage of all requests", ThirdWidth).
		WithTarget(PromQuery(`medwatch:http_errors:rate5m / medwatch:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
