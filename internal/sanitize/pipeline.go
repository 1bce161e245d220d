// Package sanitize scrubs sensitive material out of text before it is
// logged or returned to an MCP caller.
//
// Two independent pipelines exist. Error (for caller-facing failure text)
// removes filesystem paths, credentialed URLs and long base-58 secrets and
// bounds the length. Log (for durable logs) removes prefixed private keys
// and seed phrases and keeps the full length.
//
// Both are ordered lists of passes built once at init. A pass takes text
// and returns text; passes never fail.
package sanitize

import "regexp"

// Version identifies the redaction rule set. Bump it when a pattern or
// replacement changes so audit entries can be matched to the rules that
// produced them.
const Version = "1"

// Rule is one match class and its replacement. Replacement is a regexp
// template; $1 etc. refer to capture groups.
type Rule struct {
	Name        string
	Expr        *regexp.Regexp
	Replacement string
}

// Pass returns the rule as a pipeline pass.
func (r Rule) Pass() Pass {
	return Pass{Name: r.Name, Apply: func(s string) string {
		return r.Expr.ReplaceAllString(s, r.Replacement)
	}}
}

// Pass is one named text transformation.
type Pass struct {
	Name  string
	Apply func(string) string
}

// Pipeline applies passes in order.
type Pipeline struct {
	name   string
	passes []Pass
}

// NewPipeline builds a pipeline from passes in application order.
func NewPipeline(name string, passes ...Pass) Pipeline {
	return Pipeline{name: name, passes: passes}
}

// Name returns the pipeline name ("error" or "log").
func (p Pipeline) Name() string { return p.name }

// Run applies every pass to s.
func (p Pipeline) Run(s string) string {
	for _, pass := range p.passes {
		s = pass.Apply(s)
	}
	return s
}

// Passes returns the pass names in application order.
func (p Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}
	return names
}

// Step records the effect of one pass.
type Step struct {
	Pass    string
	Changed bool
	Output  string
}

// Trace runs the pipeline and records the output after each pass.
func (p Pipeline) Trace(s string) []Step {
	steps := make([]Step, 0, len(p.passes))
	for _, pass := range p.passes {
		out := pass.Apply(s)
		steps = append(steps, Step{Pass: pass.Name, Changed: out != s, Output: out})
		s = out
	}
	return steps
}
