// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/medwatch/tools/dashgen/panels"
)

// BuildOverview constructs the medwatch overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Medwatch Overview").
		Uid("medwatch-overview").
		Tags([]string{"medwatch"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ActiveSearchesStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Cycle").
		WithPanel(panels.NextCycle()).
		WithPanel(panels.ListingsRate()).
		WithPanel(panels.CycleFailures()).
		WithPanel(panels.CycleDuration()))

	b.WithRow(dashboard.NewRowBuilder("Pipeline").
		WithPanel(panels.DecisionsRate()).
		WithPanel(panels.DedupOutcomes()).
		WithPanel(panels.Ambiguities()))

	b.WithRow(dashboard.NewRowBuilder("Source").
		WithPanel(panels.SourceRequestsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Dispatch").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationFailures()).
		WithPanel(panels.Bookings()).
		WithPanel(panels.SearchesDeactivated()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
