// Package api embeds the OpenAPI document of the order workflow HTTP API.
//
// The document is the contract for internal/adapters/in/http: requests are
// validated against it before dispatch and it is served to swagger UI.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var spec []byte

var registerOnce sync.Once

// Spec returns the raw YAML document.
func Spec() []byte {
	return spec
}

// GetSwagger parses and validates the embedded document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// RegisterDocs publishes doc as JSON under swag.Name, where swagger UI
// handlers read it from. Only the first call registers.
func RegisterDocs(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding OpenAPI document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, jsonDoc(raw))
	})
	return nil
}

// jsonDoc implements swag.Swagger.
type jsonDoc []byte

func (d jsonDoc) ReadDoc() string {
	return string(d)
}
