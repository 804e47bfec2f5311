package service

import (
	"github.com/pkordes/whattoeat/internal/domain"
)

// CatalogLister is the read side of the catalog that the export needs.
type CatalogLister interface {
	List() []domain.Dish
}

// ExportService assembles a flat export of the whole catalog.
type ExportService struct {
	catalog CatalogLister
}

// NewExportService constructs an ExportService reading from catalog.
func NewExportService(catalog CatalogLister) *ExportService {
	return &ExportService{catalog: catalog}
}

// Export returns one ExportRow per dish in catalog order.
func (s *ExportService) Export() []domain.ExportRow {
	dishes := s.catalog.List()
	rows := make([]domain.ExportRow, 0, len(dishes))
	for _, d := range dishes {
		link, _ := d.SearchURL()
		rows = append(rows, domain.ExportRow{
			ID:        d.ID.String(),
			Name:      d.Name,
			Tags:      d.Tags,
			ImageURL:  d.ImageURL,
			SearchURL: link,
		})
	}
	return rows
}
