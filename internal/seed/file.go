package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/whattoeat/internal/domain"
)

// file is the layout of a catalog seed file:
//
//	dishes:
//	  - name: 拉面
//	    tags: [面, 汤]
//	    image_url: https://example.com/ramen.jpg
type file struct {
	Dishes []entry `yaml:"dishes"`
}

// Load returns the catalog to start with: the dishes in the YAML file at
// path, or Default when path is empty. The file is only ever read.
func Load(path string) ([]domain.Dish, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed.Load: %w", err)
	}
	dishes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed.Load: %s: %w", path, err)
	}
	return dishes, nil
}

// Parse decodes a seed file. Unknown fields and entries without a name are
// rejected with domain.ErrValidation; an empty dish list is allowed.
func Parse(data []byte) ([]domain.Dish, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	for i, e := range f.Dishes {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: dishes[%d]: name is required", domain.ErrValidation, i)
		}
	}
	return build(f.Dishes), nil
}
