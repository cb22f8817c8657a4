package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// JobRuns returns a timeseries panel showing scheduled job runs by job and
// result.
func JobRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Job Runs").
		Description("Scheduler job runs per hour, by job and result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (job, result) (increase(avito_job_runs_total[1h]))`,
			"{{job}} {{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// Balance returns a timeseries panel showing the account wallet balance.
func Balance() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Account Balance").
		Description("Wallet balance in rubles, polled by the balance job").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`avito_account_balance_rubles`, "{{kind}}", "A")).
		Unit("currencyRUB").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// Panics returns a stat panel showing recovered handler panics in the past
// 24 hours.
func Panics() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Panics (24h)").
		Description("Handler panics caught by the recovery middleware").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(4).
		WithTarget(PromQuery(`sum(increase(avito_http_panics_total[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
