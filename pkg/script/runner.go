package script

import (
	"fmt"
	"io"
	"os"

	"github.com/spicery/customlist/pkg/list"
)

// Rule is a compiled step.
type Rule struct {
	Position int
	Step     Step
	Action   Action
}

// Runner applies a compiled script to a list.
type Runner struct {
	Name    string
	Initial []any
	Rules   []*Rule
	Debug   bool      // Trace each step to Log.
	Log     io.Writer // Defaults to os.Stderr.
}

// StepResult records one applied step.
type StepResult struct {
	Position   int
	Op         string
	Output     string
	ErrorKind  string
	Error      string
	Count      int
	Sequence   []any
	Passed     bool
	Mismatches []string
}

// RunResult is the outcome of a whole script.
type RunResult struct {
	Name    string
	Results []StepResult
	Final   *list.List[any]
}

// Failures returns the steps whose expectations did not hold.
func (r *RunResult) Failures() []StepResult {
	var failures []StepResult
	for _, result := range r.Results {
		if !result.Passed {
			failures = append(failures, result)
		}
	}
	return failures
}

// Passed reports whether every step met its expectations.
func (r *RunResult) Passed() bool {
	return len(r.Failures()) == 0
}

// NewRunner compiles a Script into a Runner, rejecting the first invalid step.
func NewRunner(script *Script) (*Runner, error) {
	if script == nil {
		return nil, fmt.Errorf("script is nil")
	}
	runner := &Runner{
		Name:    script.Name,
		Initial: script.Initial,
		Rules:   make([]*Rule, 0, len(script.Steps)),
		Log:     os.Stderr,
	}
	for i, step := range script.Steps {
		action, err := step.ToAction()
		if err != nil {
			return nil, fmt.Errorf("error in step %d (%s): %w", i, step.Op, err)
		}
		runner.Rules = append(runner.Rules, &Rule{Position: i, Step: step, Action: action})
	}
	return runner, nil
}

// NewRunnerWithOptions is NewRunner with debug tracing to log.
func NewRunnerWithOptions(script *Script, debug bool, log io.Writer) (*Runner, error) {
	runner, err := NewRunner(script)
	if err != nil {
		return nil, err
	}
	runner.Debug = debug
	if log != nil {
		runner.Log = log
	}
	return runner, nil
}

func (r *Runner) initialList() (*list.List[any], error) {
	if r.Initial == nil {
		return list.NewFunc[any](SameValue)
	}
	return list.FromSliceFunc[any](SameValue, r.Initial)
}

// Run applies every rule in order. A failed expectation is recorded and the
// run continues; only a list that cannot be built stops it.
func (r *Runner) Run() (*RunResult, error) {
	l, err := r.initialList()
	if err != nil {
		return nil, fmt.Errorf("failed to build initial list: %w", err)
	}
	state := &State{List: l}
	result := &RunResult{Name: r.Name, Results: make([]StepResult, 0, len(r.Rules))}

	if r.Debug {
		fmt.Fprintf(r.Log, "Running script '%s' from %v\n", r.Name, state.List)
	}
	for _, rule := range r.Rules {
		outcome := rule.Action.Apply(state)
		mismatches := rule.Step.Expect.Check(outcome, state.List)
		stepResult := StepResult{
			Position:   rule.Position,
			Op:         rule.Step.Op,
			Output:     outcome.String(),
			ErrorKind:  KindOf(outcome.Err),
			Count:      state.List.Len(),
			Sequence:   state.List.ToSlice(),
			Passed:     len(mismatches) == 0,
			Mismatches: mismatches,
		}
		if outcome.Err != nil {
			stepResult.Error = outcome.Err.Error()
		}
		result.Results = append(result.Results, stepResult)

		if r.Debug {
			fmt.Fprintf(r.Log, "  [%d] %s -> %s, list %v\n", rule.Position, rule.Step.Op, stepResult.Output, state.List)
			for _, mismatch := range mismatches {
				fmt.Fprintf(r.Log, "      %s\n", mismatch)
			}
		}
	}
	result.Final = state.List
	return result, nil
}

// ReportFailures prints each failed step and its mismatches.
func (r *RunResult) ReportFailures(output io.Writer) {
	failures := r.Failures()
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(output, "%d of %d steps failed in script '%s':\n", len(failures), len(r.Results), r.Name)
	for _, failure := range failures {
		fmt.Fprintf(output, "  [%d]. %s -> %s\n", failure.Position, failure.Op, failure.Output)
		for _, mismatch := range failure.Mismatches {
			fmt.Fprintf(output, "        %s\n", mismatch)
		}
	}
}
