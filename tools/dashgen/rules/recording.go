package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "avito-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "avito-recording",
					Rules: []Rule{
						{
							Record: "avito:http_requests:rate5m",
							Expr:   `sum(rate(avito_http_requests_total[5m]))`,
						},
						{
							Record: "avito:http_errors:rate5m",
							Expr:   `sum(rate(avito_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "avito:api_calls:rate5m",
							Expr:   `sum(rate(avito_api_calls_total[5m]))`,
						},
						{
							Record: "avito:api_errors:rate5m",
							Expr:   `sum(rate(avito_api_calls_total{outcome!="success"}[5m]))`,
						},
						{
							Record: "avito:webhook_updates:rate5m",
							Expr:   `sum by (type) (rate(avito_webhook_updates_total[5m]))`,
						},
						{
							Record: "avito:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(avito_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
