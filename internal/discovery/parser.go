package discovery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"tagcat/internal/domain"
)

// declarationPattern matches Catch style test declarations:
//   - TEST_CASE( "name", "[tags]" )
//   - TEST_CASE_METHOD( Fixture, "name", "[tags]" )
//   - SCENARIO( "name" )
//
// and their CATCH_ prefixed forms. Arguments may span lines.
var declarationPattern = regexp.MustCompile(
	`\b(?:CATCH_)?(TEST_CASE_METHOD|TEST_CASE|SCENARIO)\s*\(\s*` +
		`(?:([A-Za-z_][\w:]*)\s*,\s*)?` +
		`("(?:[^"\\\n]|\\.)*")?` +
		`\s*(?:,\s*("(?:[^"\\\n]|\\.)*"))?\s*\)`,
)

// Parser parses test source files to extract test declarations
type Parser struct {
	fs afero.Fs
}

// NewParser creates a new Parser
func NewParser(fs afero.Fs) *Parser {
	return &Parser{fs: fs}
}

// FindDeclarations finds all test declarations in a source file, in source order
func (p *Parser) FindDeclarations(filePath string) (domain.TestFile, error) {
	content, err := afero.ReadFile(p.fs, filePath)
	if err != nil {
		return domain.TestFile{}, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	return domain.TestFile{
		Path:         filePath,
		Declarations: ParseDeclarations(filePath, string(content)),
	}, nil
}

// ParseDeclarations extracts declarations from source text. Declarations
// inside line or block comments are ignored.
func ParseDeclarations(filePath, content string) []domain.Declaration {
	var declarations []domain.Declaration

	code := maskComments(content)
	line := 1
	last := 0
	for _, m := range declarationPattern.FindAllStringSubmatchIndex(code, -1) {
		start := m[0]
		line += strings.Count(code[last:start], "\n")
		last = start

		macro := code[m[2]:m[3]]
		decl := domain.Declaration{
			Location: domain.SourceLocation{File: filePath, Line: line},
		}

		hasClass := m[4] >= 0
		switch macro {
		case "TEST_CASE_METHOD":
			if !hasClass {
				continue
			}
			decl.ClassName = code[m[4]:m[5]]
		default:
			if hasClass {
				continue
			}
		}

		if m[6] >= 0 {
			decl.Name = unquote(code[m[6]:m[7]])
		}
		if m[8] >= 0 {
			decl.Tags = unquote(code[m[8]:m[9]])
		}
		if macro == "SCENARIO" && decl.Name != "" {
			decl.Name = "Scenario: " + decl.Name
		}

		declarations = append(declarations, decl)
	}

	return declarations
}

// maskComments blanks out // and /* */ comments, keeping newlines so byte
// offsets and line numbers are unchanged. String and character literals are
// left intact and may contain comment markers.
func maskComments(content string) string {
	const (
		stateCode = iota
		stateString
		stateChar
		stateLineComment
		stateBlockComment
	)

	out := []byte(content)
	state := stateCode
	for i := 0; i < len(out); i++ {
		c := content[i]
		switch state {
		case stateCode:
			switch {
			case c == '"':
				state = stateString
			case c == '\'' && (i == 0 || !isIdentByte(content[i-1])):
				// A quote after a digit is a digit separator, e.g. 1'000
				state = stateChar
			case c == '/' && i+1 < len(content) && content[i+1] == '/':
				state = stateLineComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '/' && i+1 < len(content) && content[i+1] == '*':
				state = stateBlockComment
				out[i], out[i+1] = ' ', ' '
				i++
			}
		case stateString, stateChar:
			quote := byte('"')
			if state == stateChar {
				quote = '\''
			}
			switch c {
			case '\\':
				i++
			case quote, '\n':
				state = stateCode
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			} else {
				out[i] = ' '
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(content) && content[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = stateCode
			} else if c != '\n' {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// unquote decodes a C string literal. Escapes Go does not know are kept as written.
func unquote(literal string) string {
	if s, err := strconv.Unquote(literal); err == nil {
		return s
	}
	return literal[1 : len(literal)-1]
}
