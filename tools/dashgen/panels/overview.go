package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness probe.
func HealthzStat() *stat.PanelBuilder {
	return probe("Healthz", "Liveness probe (1 = ok, 0 = failing)", `medwatch_healthz_up`)
}

// ReadyzStat shows the readiness probe.
func ReadyzStat() *stat.PanelBuilder {
	return probe("Readyz", "Readiness probe: database and fingerprint store reachable", `medwatch_readyz_up`)
}

func probe(title, description, expr string) *stat.PanelBuilder {
	return single(title, description, StatHeight, StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// ActiveSearchesStat shows active searches by kind.
func ActiveSearchesStat() *stat.PanelBuilder {
	return single("Active Searches", "Active searches at the start of the last cycle", StatHeight, StatWidth).
		WithTarget(PromQuery(`medwatch_active_searches{`+Job+`}`, "{{kind}}", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		TextMode(common.BigValueTextModeValueAndName)
}

// UptimeStat shows process uptime.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start", StatHeight, StatWidth).
		WithTarget(PromQuery(`time() - process_start_time_seconds{`+Job+`}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly())
}
