package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"checkout/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestValidator checks API requests against the OpenAPI document: the
// buyer header, path parameters and the JSON shape of request bodies.
// Business rules are left to the use cases.
type requestValidator struct {
	router  routers.Router
	options *openapi3filter.Options
}

func newRequestValidator(doc *openapi3.T) (*requestValidator, error) {
	// Routes are matched on the path alone, whatever host serves them.
	doc.Servers = nil
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return &requestValidator{
		router:  router,
		options: &openapi3filter.Options{AuthenticationFunc: authenticateBuyer},
	}, nil
}

func (v *requestValidator) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		route, pathParams, err := v.router.FindRoute(req)
		if err != nil {
			// Not an API operation; echo routes it.
			return next(c)
		}

		err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options:    v.options,
		})
		var secErr *openapi3filter.SecurityRequirementsError
		switch {
		case err == nil:
			return next(c)
		case errors.As(err, &secErr):
			return c.JSON(http.StatusUnauthorized, servers.Error{Code: http.StatusUnauthorized, Message: errMissingBuyer.Error()})
		default:
			return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: err.Error()})
		}
	}
}

// authenticateBuyer accepts a request whose buyer header holds a valid id.
func authenticateBuyer(_ context.Context, in *openapi3filter.AuthenticationInput) error {
	if in.SecurityScheme == nil || in.SecurityScheme.Type != "apiKey" || in.SecurityScheme.In != "header" {
		return fmt.Errorf("unsupported security scheme %q", in.SecuritySchemeName)
	}
	_, err := parseBuyerID(in.RequestValidationInput.Request.Header.Get(in.SecurityScheme.Name))
	return err
}
