// Package testcase turns the bracketed tag specification of a test
// declaration into an immutable test case record: sorted user tags, a
// lowercase tag index and a set of intrinsic execution properties.
package testcase

import "strings"

// Properties is a set of intrinsic execution properties of a test case.
// The zero value is None.
type Properties uint8

const (
	None        Properties = 0
	IsHidden    Properties = 1 << 1 // Excluded from default runs
	ShouldFail  Properties = 1 << 2 // Passing is reported as a failure
	MayFail     Properties = 1 << 3 // Failures do not fail the run
	Throws      Properties = 1 << 4 // Expected to throw
	NonPortable Properties = 1 << 5 // Depends on platform specific behaviour
	Benchmark   Properties = 1 << 6 // Benchmark, always hidden as well
)

var propertyNames = []struct {
	flag Properties
	name string
}{
	{IsHidden, "hidden"},
	{ShouldFail, "shouldfail"},
	{MayFail, "mayfail"},
	{Throws, "throws"},
	{NonPortable, "nonportable"},
	{Benchmark, "benchmark"},
}

// Combine returns the union of p and other.
func (p Properties) Combine(other Properties) Properties {
	return p | other
}

// Has reports whether every flag in flags is set in p.
func (p Properties) Has(flags Properties) bool {
	return p&flags == flags
}

// Any reports whether at least one flag in flags is set in p.
func (p Properties) Any(flags Properties) bool {
	return p&flags != None
}

// Names returns the names of the set flags in bit order.
func (p Properties) Names() []string {
	var names []string
	for _, pn := range propertyNames {
		if p.Has(pn.flag) {
			names = append(names, pn.name)
		}
	}
	return names
}

// String renders the set as "hidden|throws", or "none" for the empty set.
func (p Properties) String() string {
	names := p.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
