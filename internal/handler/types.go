package handler

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/whattoeat/internal/domain"
)

// NoMatchMessage is shown in place of a roll result when nothing matched.
const NoMatchMessage = "点上面的按钮开始吧～"

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// DishRequest is the body of POST /dishes and PUT /dishes/{id}.
// A blank name is stored as the placeholder name; an invalid image URL is dropped.
type DishRequest struct {
	Name     string   `json:"name"`
	Tags     []string `json:"tags,omitempty"`
	ImageURL *string  `json:"image_url,omitempty"`
}

// Dish is the API representation of a domain.Dish.
type Dish struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Tags      []string           `json:"tags"`
	ImageURL  *string            `json:"image_url,omitempty"`
	SearchURL *string            `json:"search_url,omitempty"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// DishPage is the body of GET /dishes.
type DishPage struct {
	Data       []Dish     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DishList is the body of GET /history.
type DishList struct {
	Data []Dish `json:"data"`
}

// TagList is the body of GET /tags.
type TagList struct {
	Data []string `json:"data"`
}

// RollRequest is the optional body of POST /roll.
type RollRequest struct {
	Keyword string   `json:"keyword,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// RollResponse is the body of POST /roll. Dish is null when nothing matched.
type RollResponse struct {
	Dish    *Dish  `json:"dish"`
	Message string `json:"message,omitempty"`
}

// SearchLink is the body of GET /dishes/{id}/search-url.
type SearchLink struct {
	URL string `json:"url"`
}

// ExportRow is one element of the JSON export.
type ExportRow struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Tags      []string           `json:"tags"`
	ImageURL  *string            `json:"image_url,omitempty"`
	SearchURL *string            `json:"search_url,omitempty"`
}

// dishToResponse converts a domain.Dish into the API type.
// Empty optional fields become nil pointers (omitted in JSON).
func dishToResponse(d domain.Dish) Dish {
	resp := Dish{
		Id:       d.ID,
		Name:     d.Name,
		Tags:     d.Tags,
		ImageURL: optional(d.ImageURL),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if link, ok := d.SearchURL(); ok {
		resp.SearchURL = &link
	}
	return resp
}

func dishesToResponse(dishes []domain.Dish) []Dish {
	out := make([]Dish, len(dishes))
	for i, d := range dishes {
		out[i] = dishToResponse(d)
	}
	return out
}

// requestToDish builds a new domain.Dish from a request body.
func requestToDish(body DishRequest) domain.Dish {
	return domain.NewDish(body.Name, body.Tags, derefString(body.ImageURL))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
