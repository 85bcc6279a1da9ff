package mcpserver

import (
	"testing"
	"time"

	"github.com/erraggy/rad2oas/openapi"
	"github.com/stretchr/testify/assert"
)

// clearRAD2OASEnv clears all RAD2OAS_* env vars to isolate tests from the ambient environment.
func clearRAD2OASEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RAD2OAS_STRICT", "RAD2OAS_TITLE", "RAD2OAS_API_VERSION", "RAD2OAS_FORMAT",
		"RAD2OAS_CACHE_ENABLED", "RAD2OAS_CACHE_MAX_SIZE", "RAD2OAS_CACHE_TTL",
		"RAD2OAS_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearRAD2OASEnv(t)

	c := loadConfig()

	assert.False(t, c.Strict)
	assert.Equal(t, openapi.DefaultTitle, c.Title)
	assert.Equal(t, openapi.DefaultAPIVersion, c.APIVersion)
	assert.Equal(t, openapi.FormatJSON, c.Format)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearRAD2OASEnv(t)
	t.Setenv("RAD2OAS_STRICT", "true")
	t.Setenv("RAD2OAS_TITLE", "Cytomine Core")
	t.Setenv("RAD2OAS_API_VERSION", "2.1.0")
	t.Setenv("RAD2OAS_FORMAT", "yml")
	t.Setenv("RAD2OAS_CACHE_ENABLED", "false")
	t.Setenv("RAD2OAS_CACHE_MAX_SIZE", "50")
	t.Setenv("RAD2OAS_CACHE_TTL", "2m")
	t.Setenv("RAD2OAS_MAX_INLINE_SIZE", "5242880")

	c := loadConfig()

	assert.True(t, c.Strict)
	assert.Equal(t, "Cytomine Core", c.Title)
	assert.Equal(t, "2.1.0", c.APIVersion)
	assert.Equal(t, openapi.FormatYAML, c.Format)
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 2*time.Minute, c.CacheTTL)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearRAD2OASEnv(t)
	t.Setenv("RAD2OAS_STRICT", "maybe")
	t.Setenv("RAD2OAS_FORMAT", "xml")
	t.Setenv("RAD2OAS_CACHE_MAX_SIZE", "banana")
	t.Setenv("RAD2OAS_CACHE_TTL", "not-a-duration")
	t.Setenv("RAD2OAS_MAX_INLINE_SIZE", "-1")

	c := loadConfig()

	assert.False(t, c.Strict)
	assert.Equal(t, openapi.FormatJSON, c.Format)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_BlankTitleFallsBack(t *testing.T) {
	clearRAD2OASEnv(t)
	t.Setenv("RAD2OAS_TITLE", "   ")

	c := loadConfig()

	assert.Equal(t, openapi.DefaultTitle, c.Title)
}
