package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate shows records notified per hour.
func NotificationsRate() *timeseries.PanelBuilder {
	return series("Notifications / h", "Records notified per hour", StatWidth).
		WithTarget(PromQuery(`sum(rate(medwatch_notifications_sent_total{`+Job+`}[1h])) * 3600`, "notified/h", "A"))
}

// NotificationFailures shows failed sends in the past day.
func NotificationFailures() *stat.PanelBuilder {
	return single("Notification Failures (24h)", "Failed notification sends in the last 24 hours", TSHeight, StatWidth).
		WithTarget(PromQuery(`increase(medwatch_notification_failures_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// Bookings shows auto-booking attempts per hour by result.
func Bookings() *timeseries.PanelBuilder {
	return series("Bookings", "Auto-booking attempts per hour, by result", StatWidth).
		WithTarget(PromQuery(`sum by (result) (rate(medwatch_bookings_total{`+Job+`}[1h])) * 3600`, "{{result}}", "A")).
		Tooltip(MultiTooltip())
}

// SearchesDeactivated counts medicine searches retired after enough matches.
func SearchesDeactivated() *stat.PanelBuilder {
	return single("Searches Deactivated (7d)", "Medicine searches deactivated after reaching their match limit", TSHeight, StatWidth).
		WithTarget(PromQuery(`increase(medwatch_searches_deactivated_total{`+Job+`}[7d])`, "", "A")).
		Thresholds(ThresholdsGreenOnly())
}
