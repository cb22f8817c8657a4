package validate

import (
	"testing"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/avito-client/tools/dashgen/rules"
)

var known = map[string]bool{
	"avito_api_calls_total":               true,
	"avito_notification_duration_seconds": true,
	"avito:api_calls:rate5m":              true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "counter", expr: `rate(avito_api_calls_total[5m])`},
		{name: "recording rule", expr: `avito:api_calls:rate5m > 1`},
		{
			name: "histogram bucket",
			expr: `histogram_quantile(0.95, sum(rate(avito_notification_duration_seconds_bucket[5m])) by (le))`,
		},
		{name: "name matcher", expr: `{__name__="avito_api_calls_total"}`},
		{name: "unknown metric", expr: `rate(avito_missing_total[5m])`, wantErr: `unknown metric "avito_missing_total"`},
		{name: "unknown suffix base", expr: `avito_missing_bucket`, wantErr: "unknown metric"},
		{name: "syntax error", expr: `rate(avito_api_calls_total[5m]`, wantErr: "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Expr("test", tt.expr, known)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "errors: %v", res.Errors)
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func statPanel(title, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		WithTarget(prometheus.NewDataqueryBuilder().Expr(expr).RefId("A"))
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboard.NewDashboardBuilder("test").
		WithRow(dashboard.NewRowBuilder("row").
			WithPanel(statPanel("Calls", `sum(rate(avito_api_calls_total[5m]))`)).
			WithPanel(statPanel("Calls", `avito:api_calls:rate5m`)).
			WithPanel(statPanel("Broken", `avito_unknown`))).
		Build()
	require.NoError(t, err)

	res := Dashboard(dash, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `Broken: unknown metric "avito_unknown"`)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], `panel title "Calls" used 2 times`)
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Metadata: rules.PrometheusRuleMetadata{Name: "cr"},
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "g",
				Rules: []rules.Rule{
					{Record: "avito:api_calls:rate5m", Expr: `sum(rate(avito_api_calls_total[5m]))`},
					{Alert: "NoSummary", Expr: `avito:api_calls:rate5m > 10`},
					{Record: "x", Alert: "Y", Expr: `avito_api_calls_total`},
					{Expr: `avito_api_calls_total`},
				},
			}},
		},
	}

	res := Rules(cr, known)
	assert.Equal(t, []string{
		"cr/g[2]: rule sets both record and alert",
		"cr/g[3]: rule sets neither record nor alert",
	}, res.Errors)
	assert.Equal(t, []string{"cr/g[1]: alert has no summary"}, res.Warnings)
}
