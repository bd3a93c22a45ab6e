package testcase

// Tokenize splits a raw tag specification such as "[foo][.][!throws]" into
// its bracketed tokens, in source order and without the brackets.
// Text between groups is ignored. A '[' inside an open group, a ']' without
// an open group and an unterminated group are all parse errors.
func Tokenize(spec string) ([]string, error) {
	const (
		stateOutside = iota
		stateInTag
	)

	state := stateOutside
	tagStart := 0
	openedAt := 0
	tokens := make([]string, 0, 4)

	for i := 0; i < len(spec); i++ {
		char := spec[i]

		switch state {
		case stateOutside:
			switch char {
			case '[':
				state = stateInTag
				tagStart = i + 1
				openedAt = i
			case ']':
				return nil, &ParseError{Spec: spec, Offset: i, Message: "unmatched ']'"}
			}

		case stateInTag:
			switch char {
			case ']':
				tokens = append(tokens, spec[tagStart:i])
				state = stateOutside
			case '[':
				return nil, &ParseError{Spec: spec, Offset: i, Message: "nested '[' inside tag"}
			}
		}
	}

	if state == stateInTag {
		return nil, &ParseError{
			Spec:    spec,
			Offset:  openedAt,
			Message: "unterminated '['",
		}
	}

	return tokens, nil
}
