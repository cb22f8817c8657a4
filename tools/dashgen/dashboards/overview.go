// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/avito-client/tools/dashgen/panels"
)

// BuildOverview constructs the Avito Client Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Avito Client Overview").
		Uid("avito-overview").
		Tags([]string{"avito", "avito-client"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.WebhookStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Avito API.
	b.WithRow(dashboard.NewRowBuilder("Avito API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()))

	// Row 4: Quota and tokens.
	b.WithRow(dashboard.NewRowBuilder("Quota & Tokens").
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.TokenExchanges()))

	// Row 5: Messenger.
	b.WithRow(dashboard.NewRowBuilder("Messenger").
		WithPanel(panels.WebhookUpdates()).
		WithPanel(panels.ReplyFailures()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	// Row 6: Jobs.
	b.WithRow(dashboard.NewRowBuilder("Jobs").
		WithPanel(panels.JobRuns()).
		WithPanel(panels.Balance()).
		WithPanel(panels.Panics()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
