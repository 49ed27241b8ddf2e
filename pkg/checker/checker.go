package checker

import (
	"fmt"
	"io"
	"slices"

	"github.com/spicery/customlist/pkg/script"
)

type Bug struct {
	Message  string
	Position int
}

type Issue struct {
	Message  string
	Position int
	Op       string
}

// Checker performs static validation on an operation script before it runs.
type Checker struct {
	Bugs   []Bug   // Accumulated internal errors (bugs).
	Issues []Issue // Accumulated validation errors.
}

func (c *Checker) ReportErrors(output io.Writer) {
	// First report any bugs and then move onto issues.
	if len(c.Bugs) > 0 {
		fmt.Fprintln(output, "Bug in script loader detected; the loaded script is faulty:")
		count := 0
		for _, bug := range c.Bugs {
			count++
			fmt.Fprintf(output, "  [%d]. %s\n", count, bug.Message)
		}
	}
	if len(c.Issues) > 0 {
		fmt.Fprintln(output, "Errors found in the script:")
		count := 0
		for _, issue := range c.Issues {
			count++
			if issue.Position < 0 {
				fmt.Fprintf(output, "  [%d]. %s\n", count, issue.Message)
			} else {
				fmt.Fprintf(output, "  [%d]. %s, at step %d (%s)\n", count, issue.Message, issue.Position, issue.Op)
			}
		}
	}
}

// NewChecker creates a new checker instance.
func NewChecker() *Checker {
	return &Checker{
		Bugs:   []Bug{},
		Issues: []Issue{},
	}
}

// Check validates every step of the script and its expectations.
// Returns true if no problems were found.
func (c *Checker) Check(s *script.Script) bool {
	if s == nil {
		c.addBug("invalid script: nil", -1)
		return false
	}

	if len(s.Steps) == 0 {
		c.Issues = append(c.Issues, Issue{Message: "script has no steps", Position: -1})
		return false
	}

	for i, step := range s.Steps {
		c.validate(i, step)
	}

	return len(c.Issues) == 0 && len(c.Bugs) == 0
}

func (c *Checker) validate(position int, step script.Step) {
	if err := step.Validate(); err != nil {
		c.addIssue(err.Error(), position, step.Op)
		return
	}
	expect := step.Expect
	if expect == nil {
		return
	}
	if expect.Found != nil && step.Op != script.OpRemove && step.Op != script.OpContains {
		c.addIssue("'found' can only be expected of remove or contains", position, step.Op)
	}
	if expect.Index != nil && step.Op != script.OpIndexOf {
		c.addIssue("'index' can only be expected of indexOf", position, step.Op)
	}
	if expect.Buffer != nil && step.Op != script.OpCopyTo && step.Op != script.OpIterate {
		c.addIssue("'buffer' can only be expected of copyTo or iterate", position, step.Op)
	}
	if expect.Value != nil && step.Op != script.OpGet && step.Op != script.OpCount {
		c.addIssue("'value' can only be expected of get or count", position, step.Op)
	}
	if expect.Count != nil && *expect.Count < 0 {
		c.addIssue(fmt.Sprintf("expected count %d is negative", *expect.Count), position, step.Op)
	}
	if expect.Error != nil && !slices.Contains(script.ErrorKinds, *expect.Error) {
		c.addIssue(fmt.Sprintf("unknown error kind '%s': expected one of %v", *expect.Error, script.ErrorKinds), position, step.Op)
	}
}

func (c *Checker) addBug(message string, position int) {
	c.Bugs = append(c.Bugs, Bug{Message: message, Position: position})
}

func (c *Checker) addIssue(message string, position int, op string) {
	c.Issues = append(c.Issues, Issue{Message: message, Position: position, Op: op})
}
