package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var openapiYAML []byte

var registerOnce sync.Once

// APIDocs is the validated API description, rendered once as JSON.
type APIDocs struct {
	Doc  *openapi3.T
	json []byte
}

// LoadAPIDocs parses and validates the embedded document and registers it
// with swag so /swagger/* can browse it.
func LoadAPIDocs(ctx context.Context) (*APIDocs, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("render openapi document: %w", err)
	}

	docs := &APIDocs{Doc: doc, json: data}
	registerOnce.Do(func() {
		swag.Register(swag.Name, docs)
	})
	return docs, nil
}

// ReadDoc implements swag.Swagger.
func (d *APIDocs) ReadDoc() string {
	return string(d.json)
}

func (d *APIDocs) Serve(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, d.json)
}
