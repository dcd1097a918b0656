// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/medwatch/tools/dashgen/rules"
)

// Result collects validation errors and warnings.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

// panel is the subset of a Grafana panel the validator reads. Rows nest
// their panels.
type panel struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panel `json:"panels"`
}

// Dashboard validates a dashboard's JSON model.
func Dashboard(data []byte, known map[string]bool) Result {
	var res Result

	var dash struct {
		Panels []panel `json:"panels"`
	}
	if err := json.Unmarshal(data, &dash); err != nil {
		res.errorf("decoding dashboard: %w", err)
		return res
	}

	var walk func(ps []panel)
	walk = func(ps []panel) {
		for _, p := range ps {
			if p.Type == "row" {
				walk(p.Panels)
				continue
			}
			if len(p.Targets) == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
			}
			for _, t := range p.Targets {
				checkExpr(&res, "panel "+p.Title, t.Expr, known)
			}
		}
	}
	walk(dash.Panels)

	return res
}

// Rules validates every expression of a PrometheusRule resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule without record or alert name", g.Name)
				continue
			}
			if r.Record != "" && !known[r.Record] {
				res.errorf("recording rule %s is not a known metric", r.Record)
			}
			checkExpr(&res, "rule "+name, r.Expr, known)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: %w", where, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseName(vs.Name)] {
			res.errorf("%s: unknown metric %s", where, vs.Name)
		}
		return nil
	})
}

// baseName strips the series suffixes a histogram exposes.
func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}
