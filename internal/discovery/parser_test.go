package discovery

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagcat/internal/domain"
)

const widgetSource = `#include <catch2/catch.hpp>

TEST_CASE( "widgets can be resized", "[widget][.slow]" ) {
    REQUIRE( true );
}

TEST_CASE("no tags") {
}

// TEST_CASE("commented out", "[ignored]")

TEST_CASE_METHOD( WidgetFixture, "fixture based",
                  "[widget][!mayfail]" ) {
}

SCENARIO( "resizing", "[bdd]" ) {
}

CATCH_TEST_CASE( "prefixed \"quoted\" name", "[prefixed]" ) {
}

TEST_CASE() {
}

TEST_CASE( "bad tags", "[#weird]" ) {
}
`

func TestParseDeclarations(t *testing.T) {
	decls := ParseDeclarations("tests/widget_test.cpp", widgetSource)

	loc := func(line int) domain.SourceLocation {
		return domain.SourceLocation{File: "tests/widget_test.cpp", Line: line}
	}
	expected := []domain.Declaration{
		{Name: "widgets can be resized", Tags: "[widget][.slow]", Location: loc(3)},
		{Name: "no tags", Location: loc(7)},
		{Name: "fixture based", Tags: "[widget][!mayfail]", ClassName: "WidgetFixture", Location: loc(12)},
		{Name: "Scenario: resizing", Tags: "[bdd]", Location: loc(16)},
		{Name: `prefixed "quoted" name`, Tags: "[prefixed]", Location: loc(19)},
		{Location: loc(22)},
		{Name: "bad tags", Tags: "[#weird]", Location: loc(25)},
	}
	assert.Equal(t, expected, decls)
}

func TestParseDeclarations_Ignored(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "macro definition", content: "#define TEST_CASE(...) INTERNAL_CATCH_TESTCASE(__VA_ARGS__)"},
		{name: "method without class", content: `TEST_CASE_METHOD("name", "[x]") {}`},
		{name: "identifier suffix", content: `MY_TEST_CASE("name", "[x]") {}`},
		{name: "trailing comment", content: `int x = 0; // TEST_CASE("name")`},
		{name: "inline block comment", content: `/* TEST_CASE("name", "[x]") {} */`},
		{name: "multi-line block comment", content: "/*\nTEST_CASE(\"name\", \"[x]\") {}\n*/"},
		{name: "block comment inside line", content: `int y = 1; /* TEST_CASE("a") */ int z = 2;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseDeclarations("file.cpp", tt.content))
		})
	}
}

func TestParseDeclarations_CommentMarkers(t *testing.T) {
	content := `static const char* url = "http://example.com"; TEST_CASE( "after url", "[net]" ) {}
/* disabled:
TEST_CASE( "disabled", "[x]" ) {}
*/
int big = 1'000'000; TEST_CASE( "after separator", "[a/*b]" ) {}
TEST_CASE( "char literal", "[c]" ) { char q = '"'; } // TEST_CASE("not me")
`
	decls := ParseDeclarations("net.cpp", content)

	require.Len(t, decls, 3)
	assert.Equal(t, "after url", decls[0].Name)
	assert.Equal(t, 1, decls[0].Location.Line)
	assert.Equal(t, "after separator", decls[1].Name)
	assert.Equal(t, "[a/*b]", decls[1].Tags)
	assert.Equal(t, 5, decls[1].Location.Line)
	assert.Equal(t, "char literal", decls[2].Name)
	assert.Equal(t, 6, decls[2].Location.Line)
}

func TestMaskComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "line comment", input: "a // b\nc", expected: "a     \nc"},
		{name: "block comment keeps newlines", input: "a /* b\nc */ d", expected: "a     \n     d"},
		{name: "markers in string", input: `s = "//x/*";`, expected: `s = "//x/*";`},
		{name: "escaped quote in string", input: `"a\"//" // c`, expected: `"a\"//"     `},
		{name: "unterminated block", input: "x /* y", expected: "x     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskComments(tt.input))
		})
	}
}

func TestParser_FindDeclarations(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/widget_test.cpp", []byte(widgetSource), 0o644))
	parser := NewParser(fs)

	t.Run("finds declarations", func(t *testing.T) {
		file, err := parser.FindDeclarations("/src/widget_test.cpp")
		require.NoError(t, err)
		assert.Equal(t, "/src/widget_test.cpp", file.Path)
		assert.Len(t, file.Declarations, 7)
		assert.Equal(t, "/src/widget_test.cpp", file.Declarations[0].Location.File)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindDeclarations("/non/existent/file.cpp")
		assert.Error(t, err)
	})
}
