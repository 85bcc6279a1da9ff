package mcpserver

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/rad2oas/internal/testutil"
	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig swaps the active configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := cfg
	c := *saved
	mutate(&c)
	cfg = &c
	t.Cleanup(func() { cfg = saved })
}

func TestSourceInput_Check(t *testing.T) {
	tests := []struct {
		name    string
		input   sourceInput
		wantErr string
	}{
		{name: "file only", input: sourceInput{File: "restapidoc.json"}},
		{name: "content only", input: sourceInput{Content: "{}"}},
		{name: "none provided", input: sourceInput{}, wantErr: "exactly one of file or content must be provided"},
		{name: "both provided", input: sourceInput{File: "a.json", Content: "{}"}, wantErr: "exactly one of file or content must be provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.check()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSourceInput_InlineSizeLimit(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxInlineSize = 8 })

	err := sourceInput{Content: strings.Repeat("x", 9)}.check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAD2OAS_MAX_INLINE_SIZE")
}

func TestSourceInput_ResolveFile(t *testing.T) {
	radCache.reset()
	path := testutil.WriteTempFile(t, "restapidoc.json", testutil.SampleRADJSON)

	result, err := sourceInput{File: path}.resolveRAD()
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Len(t, result.Document.Objects, 1)
}

func TestSourceInput_ResolveContent(t *testing.T) {
	radCache.reset()

	result, err := sourceInput{Content: testutil.SampleRADJSON}.resolveRAD()
	require.NoError(t, err)
	assert.Equal(t, "<content>", result.SourcePath)
	assert.Len(t, result.Document.APIs, 1)
}

func TestSourceInput_ResolveInvalidContent(t *testing.T) {
	radCache.reset()

	_, err := sourceInput{Content: `{"objects": [`}.resolveRAD()
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
	assert.Equal(t, 0, radCache.size(), "failed parses are not cached")
}

func TestSourceInput_ResolveFileNotFound(t *testing.T) {
	radCache.reset()

	_, err := sourceInput{File: "/nonexistent/restapidoc.json"}.resolveRAD()
	assert.Error(t, err)
}

func TestRADCache_HitOnSameContent(t *testing.T) {
	radCache.reset()
	input := sourceInput{Content: testutil.SampleRADJSON}

	first, err := input.resolveRAD()
	require.NoError(t, err)
	second, err := input.resolveRAD()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, radCache.size())
}

func TestRADCache_FileChangeInvalidates(t *testing.T) {
	radCache.reset()
	path := testutil.WriteTempFile(t, "restapidoc.json", testutil.SampleRADJSON)

	first, err := sourceInput{File: path}.resolveRAD()
	require.NoError(t, err)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	second, err := sourceInput{File: path}.resolveRAD()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, radCache.size())
}

func TestRADCache_Disabled(t *testing.T) {
	radCache.reset()
	withConfig(t, func(c *serverConfig) { c.CacheEnabled = false })

	_, err := sourceInput{Content: testutil.SampleRADJSON}.resolveRAD()
	require.NoError(t, err)
	assert.Equal(t, 0, radCache.size())
}

func TestRADCache_Expiry(t *testing.T) {
	radCache.reset()
	radCache.put("k", nil, -time.Second)

	assert.Nil(t, radCache.get("k"))
	assert.Equal(t, 0, radCache.size(), "expired entries are removed on lookup")
}

func TestRADCache_EvictsLeastRecentlyUsed(t *testing.T) {
	radCache.reset()
	saved := radCache.maxSize
	radCache.maxSize = 2
	t.Cleanup(func() {
		radCache.maxSize = saved
		radCache.reset()
	})

	a, err := sourceInput{Content: testutil.SampleRADJSON}.resolveRAD()
	require.NoError(t, err)

	radCache.put("b", a, time.Minute)
	time.Sleep(time.Millisecond)
	// Touch the first entry so "b" becomes the oldest.
	require.NotNil(t, radCache.get(sourceInput{Content: testutil.SampleRADJSON}.cacheKey()))
	radCache.put("c", a, time.Minute)

	assert.Equal(t, 2, radCache.size())
	assert.Nil(t, radCache.get("b"))
	assert.NotNil(t, radCache.get("c"))
}
