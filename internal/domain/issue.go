package domain

// IssueKind classifies why a declaration could not be registered
type IssueKind string

const (
	IssueParse      IssueKind = "parse"       // Malformed bracket nesting
	IssueInvalidTag IssueKind = "invalid_tag" // Reserved tag name
	IssueDuplicate  IssueKind = "duplicate"   // Name and class already registered
	IssueRead       IssueKind = "read"        // Source file could not be read
)

// Issue records a declaration that was skipped during registration
type Issue struct {
	Kind     IssueKind      `json:"kind" yaml:"kind"`
	Name     string         `json:"name" yaml:"name"`
	Location SourceLocation `json:"location" yaml:"location"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"` // Offending tag spec or tag
	Message  string         `json:"message" yaml:"message"`
}
