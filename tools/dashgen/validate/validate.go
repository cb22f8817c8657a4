// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metric names.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/avito-client/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation, warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// histogramSuffixes are the series suffixes a histogram exposes on top of
// its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a single PromQL expression and checks its metric references.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: parsing %q: %v", where, expr, err))
		return res
	}

	for _, name := range metricNames(parsed) {
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
	return res
}

// Dashboard validates every query target in the dashboard and warns about
// duplicate panel titles.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	var p panelWalk
	p.walk(tree, "")

	for _, q := range p.queries {
		res.merge(Expr(q.panel, q.expr, known))
	}

	titles := make(map[string]int)
	for _, title := range p.titles {
		titles[title]++
	}
	for title, n := range titles {
		if n > 1 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel title %q used %d times", title, n))
		}
	}
	sort.Strings(res.Warnings)

	return res
}

// Rules validates every rule expression in the CR and checks that each rule
// is either a recording rule or an alert, never both.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for i, r := range g.Rules {
			where := fmt.Sprintf("%s/%s[%d]", cr.Metadata.Name, g.Name, i)
			switch {
			case r.Record != "" && r.Alert != "":
				res.Errors = append(res.Errors, where+": rule sets both record and alert")
			case r.Record == "" && r.Alert == "":
				res.Errors = append(res.Errors, where+": rule sets neither record nor alert")
			case r.Alert != "" && r.Annotations["summary"] == "":
				res.Warnings = append(res.Warnings, where+": alert has no summary")
			}
			res.merge(Expr(where, r.Expr, known))
		}
	}
	return res
}

type query struct {
	panel string
	expr  string
}

type panelWalk struct {
	queries []query
	titles  []string
}

// walk descends the generic JSON form of a dashboard, remembering the
// enclosing panel title for each "expr" it finds.
func (p *panelWalk) walk(node any, panel string) {
	switch v := node.(type) {
	case map[string]any:
		if _, isPanel := v["targets"]; isPanel {
			if title, ok := v["title"].(string); ok {
				panel = title
				p.titles = append(p.titles, title)
			}
		}
		if expr, ok := v["expr"].(string); ok {
			p.queries = append(p.queries, query{panel: panel, expr: expr})
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.walk(v[k], panel)
		}
	case []any:
		for _, item := range v {
			p.walk(item, panel)
		}
	}
}

func metricNames(expr parser.Expr) []string {
	var names []string
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if vs.Name != "" {
			names = append(names, vs.Name)
			return nil
		}
		for _, m := range vs.LabelMatchers {
			if m.Name == labels.MetricName && m.Type == labels.MatchEqual {
				names = append(names, m.Value)
			}
		}
		return nil
	})
	return names
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
