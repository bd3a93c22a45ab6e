// Package registry collects test case records built from source
// declarations and answers catalog queries over them.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"tagcat/internal/domain"
	"tagcat/internal/syncutil"
	"tagcat/internal/testcase"
)

// Order selects how test cases are listed
type Order string

const (
	OrderDeclaration Order = "decl" // Registration order
	OrderLexical     Order = "lex"  // By name
)

// ParseOrder validates an order name. Empty means declaration order.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(s)) {
	case "", OrderDeclaration:
		return OrderDeclaration, nil
	case OrderLexical:
		return OrderLexical, nil
	default:
		return "", fmt.Errorf("unknown order %q: expected %q or %q", s, OrderDeclaration, OrderLexical)
	}
}

// Query selects and orders test cases
type Query struct {
	IncludeHidden bool   // Include hidden test cases
	Tag           string // Only cases carrying this tag, ignoring case
	Order         Order
}

type caseKey struct {
	name      string
	className string
}

// Registry holds the test cases registered through one context
type Registry struct {
	ctx      *testcase.Context
	failFast bool

	mu     syncutil.Mutex
	cases  []*testcase.Info
	seen   map[caseKey]domain.SourceLocation
	issues []domain.Issue
}

// New creates a Registry. With failFast the first failing declaration
// stops RegisterFiles; otherwise failures are recorded as issues.
func New(ctx *testcase.Context, failFast bool) *Registry {
	return &Registry{
		ctx:      ctx,
		failFast: failFast,
		seen:     make(map[caseKey]domain.SourceLocation),
	}
}

// Register builds and stores the record for one declaration.
func (r *Registry) Register(decl domain.Declaration) (*testcase.Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Named declarations are checked first so a duplicate never reaches the
	// context and never consumes an anonymous number.
	if decl.Name != "" {
		if first, ok := r.seen[caseKey{decl.Name, decl.ClassName}]; ok {
			return nil, &DuplicateTestError{
				Name:      decl.Name,
				ClassName: decl.ClassName,
				First:     first,
				Redefined: decl.Location,
			}
		}
	}

	info, err := testcase.NewUnique(r.ctx, decl, func(name string) bool {
		_, ok := r.seen[caseKey{name, decl.ClassName}]
		return ok
	})
	if err != nil {
		return nil, err
	}

	key := caseKey{info.Name(), info.ClassName()}
	r.seen[key] = decl.Location
	r.cases = append(r.cases, info)
	return info, nil
}

// RegisterFiles registers every declaration of files in order.
func (r *Registry) RegisterFiles(files []domain.TestFile) error {
	for _, file := range files {
		for _, decl := range file.Declarations {
			if _, err := r.Register(decl); err != nil {
				if r.failFast {
					return fmt.Errorf("register %s: %w", decl.Location, err)
				}
				log.Warn().Err(err).Str("location", decl.Location.String()).Msg("skipping test case")
				r.AddIssue(issueFor(decl, err))
			}
		}
	}
	return nil
}

// AddIssue records an issue found outside registration, e.g. an unreadable file.
func (r *Registry) AddIssue(issue domain.Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues = append(r.issues, issue)
}

// Issues returns the recorded issues in the order they were found.
func (r *Registry) Issues() []domain.Issue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.issues)
}

// Len returns the number of registered test cases, hidden ones included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cases)
}

// TestCases returns the test cases matching q.
// Hidden cases are only returned when asked for or selected by tag.
func (r *Registry) TestCases(q Query) []*testcase.Info {
	r.mu.Lock()
	cases := slices.Clone(r.cases)
	r.mu.Unlock()

	cases = slices.DeleteFunc(cases, func(info *testcase.Info) bool {
		if q.Tag != "" {
			return !info.HasTag(q.Tag)
		}
		return info.IsHidden() && !q.IncludeHidden
	})

	if q.Order == OrderLexical {
		slices.SortStableFunc(cases, func(a, b *testcase.Info) int {
			switch {
			case a.Less(b):
				return -1
			case b.Less(a):
				return 1
			default:
				return strings.Compare(a.ClassName(), b.ClassName())
			}
		})
	}
	return cases
}
