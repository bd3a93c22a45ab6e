package testcase

import (
	"errors"
	"slices"
	"strings"

	"tagcat/internal/domain"
)

// Info describes a registered test case. It is immutable after
// construction and safe to share between goroutines.
type Info struct {
	name       string
	className  string
	location   domain.SourceLocation
	tags       []string
	lcaseTags  []string
	properties Properties
}

// New builds the record for a declaration. On error no record is returned
// and the context's anonymous counter is left untouched.
func New(ctx *Context, decl domain.Declaration) (*Info, error) {
	return NewUnique(ctx, decl, nil)
}

// NewUnique is New for callers that already hold test cases: an anonymous
// name for which taken reports true is skipped.
func NewUnique(ctx *Context, decl domain.Declaration, taken func(name string) bool) (*Info, error) {
	tokens, err := Tokenize(decl.Tags)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Location = decl.Location
		}
		return nil, err
	}

	tags, props, err := resolveTokens(tokens, decl.Location)
	if err != nil {
		return nil, err
	}
	if ctx.filenameTags {
		if tag := filenameTag(decl.Location.File); tag != "" {
			tags = append(tags, tag)
		}
	}

	name := decl.Name
	if name == "" {
		name = ctx.anonymousName(taken)
	}

	info := &Info{
		name:       name,
		className:  decl.ClassName,
		location:   decl.Location,
		properties: props,
	}
	info.tags, info.lcaseTags = normalizeTags(tags)
	return info, nil
}

// resolveTokens classifies every token, validates the tokens that contribute
// no property and accumulates the properties.
func resolveTokens(tokens []string, loc domain.SourceLocation) ([]string, Properties, error) {
	props := None
	tags := make([]string, 0, len(tokens))
	for _, token := range tokens {
		p, tag, ok := resolveSpecialTag(token)
		props = props.Combine(p)
		if !ok {
			continue
		}
		// Only plain tokens are checked; a hidden remainder is kept as written.
		if p == None && !validateTag(tag) {
			return nil, None, &InvalidTagError{Location: loc, Tag: token}
		}
		tags = append(tags, tag)
	}
	return tags, props, nil
}

// filenameTag returns "#" followed by the part of path between the last
// separator and the last dot.
func filenameTag(path string) string {
	base := path[strings.LastIndexAny(path, `/\`)+1:]
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	if base == "" {
		return ""
	}
	return "#" + base
}

// Retag returns a copy of the record whose tags and properties are rebuilt
// from tokens, e.g. Retag("db", "!mayfail"). The receiver is not modified.
func (i *Info) Retag(tokens ...string) (*Info, error) {
	tags, props, err := resolveTokens(tokens, i.location)
	if err != nil {
		return nil, err
	}
	retagged := &Info{
		name:       i.name,
		className:  i.className,
		location:   i.location,
		properties: props,
	}
	retagged.tags, retagged.lcaseTags = normalizeTags(tags)
	return retagged, nil
}

func (i *Info) Name() string                    { return i.name }
func (i *Info) ClassName() string               { return i.className }
func (i *Info) Location() domain.SourceLocation { return i.location }
func (i *Info) Properties() Properties          { return i.properties }

// Tags returns the sorted, case-sensitive tags.
func (i *Info) Tags() []string {
	return slices.Clone(i.tags)
}

// LcaseTags returns the sorted lowercase tag index.
func (i *Info) LcaseTags() []string {
	return slices.Clone(i.lcaseTags)
}

// HasTag reports whether the test case carries tag, ignoring case.
func (i *Info) HasTag(tag string) bool {
	_, found := slices.BinarySearch(i.lcaseTags, strings.ToLower(tag))
	return found
}

func (i *Info) IsHidden() bool {
	return i.properties.Has(IsHidden)
}

func (i *Info) Throws() bool {
	return i.properties.Has(Throws)
}

// OkToFail reports whether failures of the test case are tolerated.
func (i *Info) OkToFail() bool {
	return i.properties.Any(ShouldFail | MayFail)
}

func (i *Info) ExpectedToFail() bool {
	return i.properties.Has(ShouldFail)
}

// TagsAsString renders the tags as "[a][b]" in normalized order.
func (i *Info) TagsAsString() string {
	size := 2 * len(i.tags)
	for _, tag := range i.tags {
		size += len(tag)
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, tag := range i.tags {
		sb.WriteByte('[')
		sb.WriteString(tag)
		sb.WriteByte(']')
	}
	return sb.String()
}

// Equal reports whether both records describe the same test case.
func (i *Info) Equal(other *Info) bool {
	return i.name == other.name && i.className == other.className
}

// Less orders test cases by name.
func (i *Info) Less(other *Info) bool {
	return i.name < other.name
}
