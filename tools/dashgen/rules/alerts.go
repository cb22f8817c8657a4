package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// avito-client operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "avito-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "avito-alerts",
					Rules: []Rule{
						{
							Alert: "AvitoClientDown",
							Expr:  `absent(up{job="avito-client"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Avito client is down",
								"description": "The avito-client job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "AvitoReadinessDown",
							Expr:  `avito_readyz_up == 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Avito client holds no usable token",
								"description": "The readiness probe has been reporting not-ready for more than 5 minutes. Check the client credentials.",
							},
						},
						{
							Alert: "AvitoHighErrorRate",
							Expr:  `avito:http_errors:rate5m / avito:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the avito-client API",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "AvitoAPIErrors",
							Expr:  `avito:api_errors:rate5m / avito:api_calls:rate5m > 0.2`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Avito API calls are failing",
								"description": "More than 20% of Avito API calls have failed over the last 10 minutes.",
							},
						},
						{
							Alert: "AvitoTokenExchangeFailures",
							Expr:  `increase(avito_token_exchanges_total{result="error"}[15m]) > 2`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Avito token exchanges are failing",
								"description": "The token endpoint rejected several exchanges in the last 15 minutes.",
							},
						},
						{
							Alert: "AvitoDailyLimitReached",
							Expr:  `increase(avito_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Avito API daily limit has been reached",
								"description": "The configured daily call budget is exhausted. Calls are refused until the reset.",
							},
						},
						{
							Alert: "AvitoWebhookNotRegistered",
							Expr:  `avito_webhook_registered == 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Messenger webhook is not registered",
								"description": "The messenger webhook subscription has been missing for more than 15 minutes.",
							},
						},
						{
							Alert: "AvitoNotificationFailures",
							Expr:  `increase(avito_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more Discord notifications have failed to send.",
							},
						},
						{
							Alert: "AvitoJobFailures",
							Expr:  `increase(avito_job_runs_total{result="error"}[1h]) > 3`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Scheduled job is failing",
								"description": "A scheduler job has failed more than 3 times in the last hour.",
							},
						},
					},
				},
			},
		},
	}
}
