// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/rad2oas/rad"
)

// SampleRADJSON is a small but complete RAD catalog: one object and one API
// group covering a paginated list, a single-resource read, a creation and a
// deletion whose response object is not a known schema.
const SampleRADJSON = `{
  "objects": [
    {
      "name": "project",
      "description": "A project groups images and users",
      "fields": [
        {"name": "id", "description": "The project id", "type": "Long", "defaultValue": null, "mandatory": false, "useForCreation": false, "presentInResponse": true},
        {"name": "name", "description": "The project name", "type": "String", "defaultValue": null, "mandatory": true, "useForCreation": true, "presentInResponse": true},
        {"name": "created", "description": "Creation date", "type": "Date", "defaultValue": null, "mandatory": false, "useForCreation": false, "presentInResponse": true},
        {"name": "users", "description": "Member ids", "type": "List<Long>", "defaultValue": null, "mandatory": false, "useForCreation": true, "presentInResponse": false},
        {"name": "blindMode", "description": "Hide image names", "type": "Boolean", "defaultValue": false, "mandatory": false, "useForCreation": true, "presentInResponse": true}
      ]
    }
  ],
  "apis": [
    {
      "name": "project services",
      "description": "Manage projects",
      "methods": [
        {
          "path": "/project.json", "verb": "GET", "description": "List projects",
          "pathparameters": [],
          "queryparameters": [
            {"name": "max", "description": "Page size", "type": "int", "required": "false"},
            {"name": "offset", "description": "Page offset", "type": "int", "required": "false"}
          ],
          "apierrors": [],
          "response": {"object": "project"}
        },
        {
          "path": "/project/{id}.json", "verb": "GET", "description": "Get a project",
          "pathparameters": [{"name": "id", "description": "The project id", "type": "long", "required": "true"}],
          "queryparameters": [],
          "apierrors": [{"code": 404, "description": "Project not found"}],
          "response": {"object": "project"}
        },
        {
          "path": "/project.json", "verb": "POST", "description": "Add a project",
          "pathparameters": [],
          "queryparameters": [],
          "apierrors": [{"code": "400", "description": "Bad request"}],
          "response": {"object": "project"}
        },
        {
          "path": "/project/{id}.json", "verb": "DELETE",
          "pathparameters": [{"name": "id", "description": "The project id", "type": "long", "required": "true"}],
          "queryparameters": [],
          "apierrors": [],
          "response": {"object": "message"}
        }
      ]
    }
  ]
}`

// NewSimpleRADDocument creates a minimal RAD document for testing: one object
// with two fields and one API group with a single GET method returning it.
func NewSimpleRADDocument() *rad.Document {
	object := "user"
	description := "Get a user"
	return &rad.Document{
		Objects: []*rad.Object{
			{
				Name:        "user",
				Description: "A user",
				Fields: []*rad.Field{
					NewField("id", "Long"),
					NewField("username", "String"),
				},
			},
		},
		APIs: []*rad.API{
			{
				Name:        "user services",
				Description: "Manage users",
				Methods: []*rad.Method{
					{
						Path:        "/user/{id}.json",
						Verb:        "GET",
						Description: &description,
						PathParameters: []*rad.Param{
							NewParam("id", "long", "true"),
						},
						QueryParameters: []*rad.Param{},
						APIErrors:       []*rad.APIError{},
						Response:        &rad.Response{Object: &object},
					},
				},
			},
		},
	}
}

// NewField creates a field of the given type with every flag cleared.
func NewField(name, typ string) *rad.Field {
	return &rad.Field{Name: name, Description: name + " field", Type: typ}
}

// NewParam creates a parameter with the given raw required value.
func NewParam(name, typ string, required any) *rad.Param {
	return &rad.Param{Name: name, Description: name + " parameter", Type: typ, Required: required}
}

// NewMethod creates a method with no parameters whose response names object.
// An empty object leaves the response object null.
func NewMethod(path, verb, object string) *rad.Method {
	m := &rad.Method{
		Path:            path,
		Verb:            verb,
		PathParameters:  []*rad.Param{},
		QueryParameters: []*rad.Param{},
		APIErrors:       []*rad.APIError{},
		Response:        &rad.Response{},
	}
	if object != "" {
		m.Response.Object = &object
	}
	return m
}

// WriteTempFile writes content to a file named name in a fresh temporary directory.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "restapidoc.json", string(data))
}
