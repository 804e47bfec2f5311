package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/whattoeat/internal/domain"
)

// Parameter binding follows the OpenAPI styles declared in openapi.yaml:
// path parameters use "simple", query parameters use exploded "form".

// pathID binds the {id} path parameter.
func pathID(r *http.Request) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

// pathIndex binds the {index} path parameter.
func pathIndex(r *http.Request) (int, error) {
	var index int
	err := runtime.BindStyledParameterWithOptions("simple", "index", chi.URLParam(r, "index"), &index,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return index, err
}

// optionalString binds an optional query parameter.
func optionalString(r *http.Request, name string) (*string, error) {
	var v *string
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v)
	return v, err
}

// optionalInt binds an optional integer query parameter.
func optionalInt(r *http.Request, name string) (*int, error) {
	var v *int
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v)
	return v, err
}

// filterParams binds ?q= and repeated ?tag= into a domain.Filter.
func filterParams(r *http.Request) (domain.Filter, error) {
	q, err := optionalString(r, "q")
	if err != nil {
		return domain.Filter{}, err
	}
	var tags *[]string
	if err := runtime.BindQueryParameter("form", true, false, "tag", r.URL.Query(), &tags); err != nil {
		return domain.Filter{}, err
	}

	f := domain.Filter{Keyword: derefString(q)}
	if tags != nil {
		f.Tags = domain.NormalizeTags(*tags)
	}
	return f, nil
}

// pageParams binds ?page= and ?limit=.
func pageParams(r *http.Request) (domain.PaginationParams, error) {
	page, err := optionalInt(r, "page")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
