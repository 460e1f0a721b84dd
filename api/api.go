// Package api embeds the OpenAPI document of the service and registers it with swag so
// that the Swagger UI can serve it.
package api

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var Spec []byte

type document struct{}

func (document) ReadDoc() string {
	return string(Spec)
}

func init() {
	swag.Register(swag.Name, document{})
}
