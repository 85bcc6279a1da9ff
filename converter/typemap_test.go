package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		token      string
		wantType   string
		wantFormat string
	}{
		{"int", "integer", "int32"},
		{"Integer", "integer", "int32"},
		{"long", "integer", "int64"},
		{"LONG", "integer", "int64"},
		{"bool", "boolean", ""},
		{"Boolean", "boolean", ""},
		{"float", "number", ""},
		{"Double", "number", ""},
		{"String", "string", ""},
		{"str", "string", ""},
		{"text", "string", ""},
		{"Date", "string", "date"},
		{"list", "array", ""},
		{"Array", "array", ""},
		{"List<Integer>", "array", ""},
		{"ArrayList<Long>", "array", ""},
		{"Map", "object", ""},
		{"", "object", ""},
		{" long", "object", ""},
		{"datetime", "object", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			typ, format := MapType(tt.token)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}

func TestMapTypeIsTotal(t *testing.T) {
	valid := map[string]bool{"integer": true, "number": true, "boolean": true, "string": true, "array": true, "object": true}
	tokens := []string{"", " ", "<>", ">", "List<", "ß", "İNT", "\x00", "Long<", "list<<>>", "🙂"}

	for _, token := range tokens {
		typ, _ := MapType(token)
		assert.True(t, valid[typ], "MapType(%q) returned %q", token, typ)
	}
}

func TestLookupTypeLowerCasesWithoutFolding(t *testing.T) {
	tests := []struct {
		token string
		known bool
	}{
		{"STRING", true},
		{"Long", true},
		{"ſtring", false},
		{"ſtr", false},
		{"ß", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, _, known := lookupType(tt.token)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestLookupTypeReportsUnknown(t *testing.T) {
	_, _, known := lookupType("Map<String,String>")
	assert.False(t, known)

	_, _, known = lookupType("List<Map>")
	assert.True(t, known)
}

func TestInnerToken(t *testing.T) {
	tests := []struct {
		token     string
		wantInner string
		wantOK    bool
	}{
		{"List<Integer>", "Integer", true},
		{"List<List<Long>>", "List<Long>", true},
		{"List<>", "", true},
		{"List", "", false},
		{"List<Integer", "", false},
		{"List>Integer", "", false},
		{">List<", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			inner, ok := innerToken(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantInner, inner)
		})
	}
}
