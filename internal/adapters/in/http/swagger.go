package http

import (
	"sync"

	"github.com/swaggo/swag"
)

var swaggerOnce sync.Once

// swaggerDoc serves the OpenAPI document to the swagger UI at /swagger/.
type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

// registerSwaggerDoc publishes raw under the default swag instance. swag
// panics on a second registration, so only the first document is kept.
func registerSwaggerDoc(raw []byte) {
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(raw))
	})
}
