package rewriters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/stdscope/internal/model"
)

func TestSingleSegmentSymbols(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"vector", []string{"std::vector<int> v;"}, []string{"vector"}},
		{"nested namespace", []string{"std::filesystem::path p;"}, []string{}},
		{"nested member", []string{"auto n = std::string::npos;"}, []string{}},
		{"sorted and distinct", []string{"std::string a; std::map<int, int> b;", "std::string c;"}, []string{"map", "string"}},
		{"single character identifier", []string{"std::x y;"}, []string{"x"}},
		{"not a word boundary", []string{"mystd::vector v;"}, []string{}},
		{"declaration lines are ignored", []string{"using std::string;", "  using std::chrono::seconds ;"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SingleSegmentSymbols(tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnqualify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"std::vector<int> v;", "vector<int> v;"},
		{"std::filesystem::path p;", "std::filesystem::path p;"},
		{"if (pos == std::string::npos) std::cout << std::endl;", "if (pos == std::string::npos) cout << endl;"},
		{"std::map<std::string, std::vector<int>> m;", "map<string, vector<int>> m;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Unqualify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntroduce_EndToEnd(t *testing.T) {
	src := `#include <iostream>
#include <string>

void read() {
    std::string line;
    std::string copy;
    std::getline(input, line);
}
`
	want := `#include <iostream>
#include <string>

using std::getline;
using std::string;


void read() {
    string line;
    string copy;
    getline(input, line);
}
`

	in := NewIntroduce()

	rw, err := in.Rewrite(src)
	require.NoError(t, err)
	assert.False(t, rw.Skipped)

	if diff := cmp.Diff(want, rw.Text); diff != "" {
		t.Fatalf("Rewrite() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"applied 2 using(s)", "replaced 2 symbol(s)"}, rw.Changes)
	assert.Equal(t, []string{
		"+ using std::getline;",
		"+ using std::string;",
		"~ std::getline -> getline",
		"~ std::string -> string",
	}, rw.Details)

	again, err := in.Rewrite(rw.Text)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Equal(t, rw.Text, again.Text)
}

func TestIntroduce_Idempotent(t *testing.T) {
	inputs := []string{
		"#include <a>\nstd::filesystem::path p = std::string::npos;\nstd::vector<int> v;\n",
		"#include <string>\n\nusing std::string;\n\nstd::string s; std::size_t n;\n",
		"std::cout << 1;",
		"#include <a>\r\n\r\nstd::map<int, int> m;\r\n",
		"#include <a>\nint x;\n",
		"",
	}

	in := NewIntroduce()

	for _, src := range inputs {
		once, err := in.Rewrite(src)
		require.NoError(t, err)

		twice, err := in.Rewrite(once.Text)
		require.NoError(t, err)

		if diff := cmp.Diff(once.Text, twice.Text); diff != "" {
			t.Errorf("second pass changed %q (-once +twice):\n%s", src, diff)
		}

		assert.True(t, twice.Skipped, "second pass over %q found symbols", src)
	}
}

func TestIntroduce_ExistingDeclarationsNotDuplicated(t *testing.T) {
	src := "#include <vector>\n\nusing  std::vector ;\n\nstd::vector<int> v;\nstd::size_t n;\n"
	want := "#include <vector>\n\nusing std::size_t;\n\n\nusing  std::vector ;\n\nvector<int> v;\nsize_t n;\n"

	rw, err := NewIntroduce().Rewrite(src)
	require.NoError(t, err)

	if diff := cmp.Diff(want, rw.Text); diff != "" {
		t.Fatalf("Rewrite() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"applied 1 using(s)", "replaced 2 symbol(s)"}, rw.Changes)
}

func TestIntroduce_NoMatchesIsSkipped(t *testing.T) {
	src := "#include <filesystem>\nstd::filesystem::path p;\n"

	rw, err := NewIntroduce().Rewrite(src)
	require.NoError(t, err)
	assert.True(t, rw.Skipped)
	assert.Equal(t, src, rw.Text)
	assert.Empty(t, rw.Changes)
}

func TestIntroduce_NoIncludesInsertsOnTop(t *testing.T) {
	rw, err := NewIntroduce().Rewrite("std::vector<int> v;")
	require.NoError(t, err)
	assert.Equal(t, "\nusing std::vector;\n\nvector<int> v;", rw.Text)
}

func TestIntroduce_Strategy(t *testing.T) {
	assert.Equal(t, m.StrategyIntroduce, NewIntroduce().Strategy())
}

func TestDeclaration(t *testing.T) {
	assert.Equal(t, "using std::string;", Declaration("string"))
}
