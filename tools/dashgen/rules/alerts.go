package rules

// AlertRules returns the operational alerts for medwatch.
func AlertRules() PrometheusRule {
	return newRule("medwatch-alerts", RuleGroup{
		Name: "medwatch-alerts",
		Rules: []Rule{
			alert("MedwatchDown", `absent(up{job="medwatch"})`, "2m", "critical",
				"Medwatch is down",
				"The medwatch job has been absent for more than 2 minutes."),
			alert("MedwatchReadinessDown", `medwatch_readyz_up == 0`, "2m", "critical",
				"Medwatch readiness check is failing",
				"A database or fingerprint store ping has been failing for more than 2 minutes."),
			alert("MedwatchHighErrorRate", `medwatch:http_errors:rate5m / medwatch:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on medwatch",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("MedwatchCycleStalled", `time() > medwatch_scheduler_next_cycle_timestamp + 600`, "0m", "critical",
				"Poll cycles have stopped",
				"The next scheduled cycle is more than 10 minutes overdue."),
			alert("MedwatchSearchFailures", `sum(medwatch:cycle_failures:rate5m) > 0`, "15m", "warning",
				"Searches are failing",
				"Per-search cycles have been failing for more than 15 minutes."),
			alert("MedwatchSourceLimitReached", `increase(medwatch_source_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
				"Listing source daily limit has been reached",
				"The collector quota is exhausted. Fetches fail until the quota resets."),
			alert("MedwatchNotificationFailures", `increase(medwatch_notification_failures_total[5m]) > 0`, "1m", "warning",
				"Notification delivery failures detected",
				"One or more Telegram notifications failed to send. Their fingerprints stay uncommitted and are retried next cycle."),
		},
	})
}
