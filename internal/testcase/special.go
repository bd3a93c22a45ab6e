package testcase

import "strings"

// specialTags maps the lowercase form of a special tag to its properties.
var specialTags = map[string]Properties{
	".":            IsHidden,
	"!hide":        IsHidden,
	"!throws":      Throws,
	"!shouldfail":  ShouldFail,
	"!mayfail":     MayFail,
	"!nonportable": NonPortable,
	"!benchmark":   Benchmark | IsHidden,
}

// resolveSpecialTag classifies a single token. It returns the properties the
// token contributes and, when the token still names an ordinary tag, that
// tag. A dot-prefixed token such as ".approvals" is hidden and keeps
// "approvals" as its ordinary tag.
func resolveSpecialTag(token string) (props Properties, tag string, ok bool) {
	if p, found := specialTags[strings.ToLower(token)]; found {
		return p, "", false
	}
	if len(token) > 1 && token[0] == '.' {
		return IsHidden, token[1:], true
	}
	return None, token, true
}
