package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// openAPIDoc serves the embedded document to echo-swagger through swag's registry.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// registerSwaggerDoc publishes swagger under swag.Name. swag panics on a second
// registration, so only the first call has an effect.
func registerSwaggerDoc(swagger *openapi3.T) error {
	raw, err := json.Marshal(swagger)
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})
	return nil
}
