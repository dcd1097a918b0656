package rules

// RecordingRules returns the pre-computed rates dashboards and alerts read.
func RecordingRules() PrometheusRule {
	return newRule("medwatch-recording-rules", RuleGroup{
		Name: "medwatch-recording",
		Rules: []Rule{
			record("medwatch:http_requests:rate5m", `sum(rate(medwatch_http_requests_total[5m]))`),
			record("medwatch:http_errors:rate5m", `sum(rate(medwatch_http_requests_total{status=~"5.."}[5m]))`),
			record("medwatch:listings_fetched:rate5m", `sum by (kind) (rate(medwatch_listings_fetched_total[5m]))`),
			record("medwatch:cycle_failures:rate5m", `sum by (reason) (rate(medwatch_cycle_failures_total[5m]))`),
			record("medwatch:decisions:rate5m", `sum by (action) (rate(medwatch_decisions_total[5m]))`),
			record("medwatch:source_requests:rate5m", `sum by (endpoint) (rate(medwatch_source_requests_total[5m]))`),
		},
	})
}
