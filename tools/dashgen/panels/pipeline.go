package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DecisionsRate shows decisions per minute by action.
func DecisionsRate() *timeseries.PanelBuilder {
	return series("Decisions / min", "Decisions produced per minute, by action", TSWidth).
		WithTarget(PromQuery(`medwatch:decisions:rate5m * 60`, "{{action}}", "A")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// DedupOutcomes shows matching records by deduplication outcome over the
// last hour.
func DedupOutcomes() *bargauge.PanelBuilder {
	return breakdown("Dedup Outcomes (1h)", "Matching records by deduplication outcome", TSWidth,
		`sum by (outcome) (increase(medwatch_dedup_outcomes_total{`+Job+`}[1h]))`, "{{outcome}}").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// Ambiguities shows sub-fields normalization could not parse over the last
// day.
func Ambiguities() *bargauge.PanelBuilder {
	return breakdown("Normalization Ambiguities (24h)", "Sub-fields resolved to unknown, by field", FullWidth,
		`sum by (field) (increase(medwatch_normalization_ambiguities_total{`+Job+`}[24h]))`, "{{field}}").
		Thresholds(ThresholdsGreenYellowRed(10, 100)).
		ColorScheme(ColorSchemeThresholds())
}

func breakdown(title, description string, span uint32, expr, legend string) *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(span).
		WithTarget(PromQuery(expr, legend, "A")).
		Orientation(common.VizOrientationHorizontal).
		Min(0)
}
