package registry

import (
	"errors"
	"fmt"

	"tagcat/internal/domain"
	"tagcat/internal/testcase"
)

// ErrDuplicate is matched by every *DuplicateTestError.
var ErrDuplicate = errors.New("duplicate test case")

// DuplicateTestError reports a second declaration with a name and class
// name that are already registered.
type DuplicateTestError struct {
	Name      string
	ClassName string
	First     domain.SourceLocation
	Redefined domain.SourceLocation
}

// Error implements the error interface.
func (e *DuplicateTestError) Error() string {
	name := e.Name
	if e.ClassName != "" {
		name = e.ClassName + "::" + name
	}
	return fmt.Sprintf("test case %q already defined: first seen at %s, redefined at %s", name, e.First, e.Redefined)
}

// Is lets errors.Is match ErrDuplicate.
func (e *DuplicateTestError) Is(target error) bool {
	return target == ErrDuplicate
}

// issueFor converts a registration error into the issue recorded for it.
func issueFor(decl domain.Declaration, err error) domain.Issue {
	issue := domain.Issue{
		Name:     decl.Name,
		Location: decl.Location,
		Message:  err.Error(),
	}

	var (
		pe  *testcase.ParseError
		ite *testcase.InvalidTagError
		dup *DuplicateTestError
	)
	switch {
	case errors.As(err, &pe):
		issue.Kind = domain.IssueParse
		issue.Text = pe.Spec
	case errors.As(err, &ite):
		issue.Kind = domain.IssueInvalidTag
		issue.Text = ite.Tag
	case errors.As(err, &dup):
		issue.Kind = domain.IssueDuplicate
		issue.Name = dup.Name
	}
	return issue
}
