package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/s0up4200/bggxml/bgg"
)

// Filter is a compiled boolean expression over collection entries. It is safe
// for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	now        func() time.Time
}

// Option configures a Filter.
type Option func(*Filter)

// WithNow sets the clock used by daysSinceModified.
func WithNow(now func() time.Time) Option {
	return func(f *Filter) {
		if now != nil {
			f.now = now
		}
	}
}

// Compile compiles an expression such as
//
//	Own && Plays == 0 && playsWith(2)
//
// into a Filter.
func Compile(expression string, opts ...Option) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	f := &Filter{expression: expression, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}

	// Compile against a zero entry so variable types are known
	program, err := expr.Compile(expression,
		expr.Env(f.environment(bgg.CollectionEntry{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}
	f.program = program

	return f, nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate reports whether entry matches the filter.
func (f *Filter) Evaluate(entry bgg.CollectionEntry) (bool, error) {
	result, err := expr.Run(f.program, f.environment(entry))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			EntryName:  entry.Name,
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool), nil
}

// Matches is Evaluate with errors counted as no match.
func (f *Filter) Matches(entry bgg.CollectionEntry) bool {
	ok, err := f.Evaluate(entry)
	return err == nil && ok
}

// Apply returns the matching entries in their original order.
func (f *Filter) Apply(entries []bgg.CollectionEntry) []bgg.CollectionEntry {
	out := make([]bgg.CollectionEntry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
