package domain

import "fmt"

// SourceLocation points at the line a test case was declared on
type SourceLocation struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
}

// String renders the location as file:line
func (l SourceLocation) String() string {
	if l.Line <= 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Declaration is a raw test case declaration as found in a source file,
// before its tag specification has been parsed.
type Declaration struct {
	Name      string         // Test case name, may be empty
	Tags      string         // Raw bracketed tag specification, e.g. "[db][.][!mayfail]"
	ClassName string         // Fixture class for method-style declarations
	Location  SourceLocation // Where the declaration starts
}

// TestFile is a source file holding test declarations
type TestFile struct {
	Path         string        // Full path to the source file
	Declarations []Declaration // Declarations in source order
}
