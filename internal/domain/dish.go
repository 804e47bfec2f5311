// Package domain contains the core data types for the WhatToEat application.
// It is imported by every other internal package (repo, service, handler)
// and holds no state of its own.
package domain

import (
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// UnnamedDish is the placeholder name given to a dish created with a blank name.
const UnnamedDish = "未命名菜品"

// searchEndpoint is the external site a dish name is searched on.
const searchEndpoint = "https://www.xiaohongshu.com/search_result"

// Dish is a named food item with tags and an optional image.
// ID never changes; the other fields are only ever replaced as a whole
// through the catalog.
type Dish struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Tags     []string  `json:"tags"`
	ImageURL string    `json:"image_url,omitempty"` // empty when the dish has no image
}

// NewDish builds a Dish with a freshly generated ID.
// The name is trimmed and falls back to UnnamedDish when blank, tags are
// normalized with NormalizeTags, and an image URL that is not an absolute
// http(s) URL is dropped.
func NewDish(name string, tags []string, imageURL string) Dish {
	d := Dish{ID: uuid.New()}
	d.Set(name, tags, imageURL)
	return d
}

// Set replaces the mutable fields of d using the same normalization as NewDish.
func (d *Dish) Set(name string, tags []string, imageURL string) {
	d.Name = strings.TrimSpace(name)
	if d.Name == "" {
		d.Name = UnnamedDish
	}
	d.Tags = NormalizeTags(tags)
	d.ImageURL = normalizeImageURL(imageURL)
}

// Clone returns a deep copy of d so the copy shares no slice with d.
func (d Dish) Clone() Dish {
	d.Tags = slices.Clone(d.Tags)
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}

// HasTag reports whether tag is one of the dish's tags.
func (d Dish) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// SearchURL returns the external search link for the dish name.
// ok is false when no link can be built, in which case callers skip the
// open action silently.
func (d Dish) SearchURL() (link string, ok bool) {
	if strings.TrimSpace(d.Name) == "" {
		return "", false
	}
	u, err := url.Parse(searchEndpoint)
	if err != nil {
		return "", false
	}
	u.RawQuery = url.Values{"keyword": []string{d.Name}}.Encode()
	return u.String(), true
}

// NormalizeTags trims every tag and drops empty and repeated entries,
// keeping the first occurrence order. It never returns nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ParseTags splits a comma-separated tag list such as "辣, 米饭,奶酪".
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}

func normalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.String()
}
