package converter

import (
	"strings"
	"testing"

	"github.com/erraggy/rad2oas/internal/testutil"
	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/erraggy/rad2oas/rad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertWithOptionsInputs(t *testing.T) {
	path := testutil.WriteTempFile(t, "restapidoc.json", testutil.SampleRADJSON)
	parsed, err := rad.ParseWithOptions(rad.WithFilePath(path))
	require.NoError(t, err)

	tests := []struct {
		name     string
		opts     []Option
		wantPath string
	}{
		{"file path", []Option{WithFilePath(path)}, path},
		{"reader", []Option{WithReader(strings.NewReader(testutil.SampleRADJSON))}, "<reader>"},
		{"parsed", []Option{WithParsed(*parsed)}, path},
		{"document", []Option{WithDocument(parsed.Document)}, ""},
		{
			"source name",
			[]Option{WithReader(strings.NewReader(testutil.SampleRADJSON)), WithSourceName("<stdin>")},
			"<stdin>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertWithOptions(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, result.SourcePath)
			assert.Equal(t, 4, result.Stats.OperationCount)
			assert.True(t, result.Success)
		})
	}
}

func TestConvertWithOptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantMsg string
	}{
		{"no source", nil, "must specify an input source"},
		{
			"two sources",
			[]Option{WithFilePath("a.json"), WithDocument(&rad.Document{})},
			"exactly one input source",
		},
		{"nil reader", []Option{WithReader(nil)}, "reader cannot be nil"},
		{"nil document", []Option{WithDocument(nil)}, "document cannot be nil"},
		{"empty parsed", []Option{WithParsed(rad.ParseResult{})}, "no document"},
		{"empty title", []Option{WithDocument(&rad.Document{}), WithTitle("")}, "title cannot be empty"},
		{"empty version", []Option{WithDocument(&rad.Document{}), WithAPIVersion("")}, "API version cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConvertWithOptionsSettings(t *testing.T) {
	doc := singleMethodDoc(nil, testutil.NewMethod("/x", "GET", "Unknown"))
	doc.Objects = []*rad.Object{{Name: "o", Fields: []*rad.Field{{Name: "m", Type: "Map"}}}}

	result, err := ConvertWithOptions(
		WithDocument(doc),
		WithTitle("Custom"),
		WithAPIVersion("9.9.9"),
		WithIncludeInfo(false),
	)
	require.NoError(t, err)
	assert.Equal(t, "Custom", result.Document.Info.Title)
	assert.Equal(t, "9.9.9", result.Document.Info.Version)
	assert.Equal(t, 0, result.InfoCount)
	assert.Equal(t, 1, result.WarningCount)

	result, err = ConvertWithOptions(WithDocument(doc), WithStrictMode(true))
	assert.ErrorIs(t, err, oaserrors.ErrConversion)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.InfoCount)
}

func TestConvertWithOptionsStructureValidation(t *testing.T) {
	missingType := strings.Replace(testutil.SampleRADJSON, `"type": "String", `, "", 1)

	_, err := ConvertWithOptions(WithReader(strings.NewReader(missingType)))
	assert.ErrorIs(t, err, oaserrors.ErrParse)

	result, err := ConvertWithOptions(
		WithReader(strings.NewReader(missingType)),
		WithStructureValidation(false),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WarningCount, "the missing type maps to object")
}

func TestConvertWithOptionsLogger(t *testing.T) {
	logger := testutil.NewRecordingLogger()
	path := testutil.WriteTempFile(t, "restapidoc.json", testutil.SampleRADJSON)

	_, err := ConvertWithOptions(WithFilePath(path), WithLogger(logger))
	require.NoError(t, err)
	assert.Len(t, logger.Find("checking source document"), 1)
	assert.Len(t, logger.Find("converted RAD document"), 1)
	assert.Len(t, logger.Find("unresolved response object"), 1)
}
