package routing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	t.Parallel()

	tree := NewTree[string]()
	assert.NotNil(t, tree)
	assert.Zero(t, tree.Len())
}

func TestTree_AddAndRecognize(t *testing.T) {
	t.Parallel()

	tree := NewTree[string]()
	tree.Add("/users", "list")
	tree.Add("/users/:id", "show")
	tree.Add("/users/:id/posts", "posts")
	tree.Add("/static/*filepath", "static")
	tree.Add("/", "root")

	tests := []struct {
		name           string
		path           string
		expectedValue  string
		expectedParams Params
		expectMatch    bool
	}{
		{
			name:           "literal path",
			path:           "/users",
			expectedValue:  "list",
			expectedParams: Params{},
			expectMatch:    true,
		},
		{
			name:           "parameter extraction",
			path:           "/users/42",
			expectedValue:  "show",
			expectedParams: Params{"id": "42"},
			expectMatch:    true,
		},
		{
			name:           "parameter in the middle",
			path:           "/users/42/posts",
			expectedValue:  "posts",
			expectedParams: Params{"id": "42"},
			expectMatch:    true,
		},
		{
			name:           "wildcard binds the remaining suffix",
			path:           "/static/css/site/main.css",
			expectedValue:  "static",
			expectedParams: Params{"filepath": "css/site/main.css"},
			expectMatch:    true,
		},
		{
			name:           "root path",
			path:           "/",
			expectedValue:  "root",
			expectedParams: Params{},
			expectMatch:    true,
		},
		{
			name:           "trailing slash is not significant",
			path:           "/users/",
			expectedValue:  "list",
			expectedParams: Params{},
			expectMatch:    true,
		},
		{
			name:        "no match",
			path:        "/orders",
			expectMatch: false,
		},
		{
			name:        "deeper than any pattern",
			path:        "/users/42/posts/7",
			expectMatch: false,
		},
		{
			name:        "wildcard requires a remaining segment",
			path:        "/static",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			match, ok := tree.Recognize(tt.path)
			if !tt.expectMatch {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.expectedValue, match.Value)
			assert.Equal(t, tt.expectedParams, match.Params)
		})
	}
}

func TestTree_LiteralBeatsParameter(t *testing.T) {
	t.Parallel()

	tree := NewTree[string]()
	tree.Add("/a/:x", "param")
	tree.Add("/a/b", "literal")

	match, ok := tree.Recognize("/a/b")
	require.True(t, ok)
	assert.Equal(t, "literal", match.Value)
	assert.Empty(t, match.Params)

	match, ok = tree.Recognize("/a/c")
	require.True(t, ok)
	assert.Equal(t, "param", match.Value)
	assert.Equal(t, Params{"x": "c"}, match.Params)
}

func TestTree_ParameterBeatsWildcard(t *testing.T) {
	t.Parallel()

	tree := NewTree[string]()
	tree.Add("/files/*rest", "wild")
	tree.Add("/files/:name", "param")

	match, ok := tree.Recognize("/files/report.txt")
	require.True(t, ok)
	assert.Equal(t, "param", match.Value)
	assert.Equal(t, Params{"name": "report.txt"}, match.Params)

	// Two segments only the wildcard can absorb.
	match, ok = tree.Recognize("/files/2024/report.txt")
	require.True(t, ok)
	assert.Equal(t, "wild", match.Value)
	assert.Equal(t, Params{"rest": "2024/report.txt"}, match.Params)
}

func TestTree_BacktracksFromLiteralBranch(t *testing.T) {
	t.Parallel()

	// /a/b only continues to /c; /a/:x continues to /d. A path like
	// /a/b/d enters the literal branch first, fails, and must fall
	// back to the parameter branch.
	tree := NewTree[string]()
	tree.Add("/a/b/c", "literal")
	tree.Add("/a/:x/d", "param")

	match, ok := tree.Recognize("/a/b/d")
	require.True(t, ok)
	assert.Equal(t, "param", match.Value)
	assert.Equal(t, Params{"x": "b"}, match.Params)

	// The failed branch must not leave stray bindings behind.
	match, ok = tree.Recognize("/a/b/c")
	require.True(t, ok)
	assert.Equal(t, "literal", match.Value)
	assert.Empty(t, match.Params)
}

func TestTree_OrderIndependent(t *testing.T) {
	t.Parallel()

	patterns := []struct {
		pattern string
		value   string
	}{
		{"/a/b/c", "abc"},
		{"/a/:x/c", "a_c"},
		{"/a/:x/:y", "a__"},
		{"/a/*rest", "a*"},
		{"/a/b/:z", "ab_"},
	}

	probe := func(tree *Tree[string], path string) string {
		match, ok := tree.Recognize(path)
		if !ok {
			return ""
		}
		return match.Value
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]struct {
			pattern string
			value   string
		}, len(patterns))
		copy(shuffled, patterns)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		tree := NewTree[string]()
		for _, p := range shuffled {
			tree.Add(p.pattern, p.value)
		}

		assert.Equal(t, "abc", probe(tree, "/a/b/c"))
		assert.Equal(t, "ab_", probe(tree, "/a/b/d"))
		assert.Equal(t, "a_c", probe(tree, "/a/q/c"))
		assert.Equal(t, "a__", probe(tree, "/a/q/r"))
		assert.Equal(t, "a*", probe(tree, "/a/q/r/s"))
	}
}

func TestTree_DuplicatePatternLastWins(t *testing.T) {
	t.Parallel()

	tree := NewTree[string]()
	tree.Add("/ping", "first")
	tree.Add("/ping", "second")

	assert.Equal(t, 1, tree.Len())

	match, ok := tree.Recognize("/ping")
	require.True(t, ok)
	assert.Equal(t, "second", match.Value)
}

func TestTree_UnnamedWildcard(t *testing.T) {
	t.Parallel()

	tree := NewTree[string]()
	tree.Add("/assets/*", "assets")

	match, ok := tree.Recognize("/assets/js/app.js")
	require.True(t, ok)
	assert.Equal(t, "assets", match.Value)
	assert.Equal(t, Params{"*": "js/app.js"}, match.Params)
}

func TestTree_Len(t *testing.T) {
	t.Parallel()

	tree := NewTree[int]()
	for i := 0; i < 5; i++ {
		tree.Add(fmt.Sprintf("/p/%d", i), i)
	}
	assert.Equal(t, 5, tree.Len())
}
