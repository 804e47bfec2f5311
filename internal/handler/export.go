// Package handler — export.go implements GET /export.
// Returns the whole catalog as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/whattoeat/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"id", "name", "tags", "image_url", "search_url"}

// GetExport implements GET /export.
// It returns one row per dish in catalog order.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format, err := optionalString(r, "format")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}

	switch derefString(format) {
	case "", "json":
		writeJSON(w, http.StatusOK, buildJSONRows(s.export.Export()))
	case "csv":
		writeCSV(w, s.export.Export())
	default:
		writeJSON(w, http.StatusBadRequest, paramBody(errors.New("format must be json or csv")))
	}
}

// buildJSONRows converts domain rows to the JSON response type.
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToResponse(r))
	}
	return out
}

// writeCSV encodes domain rows as CSV.
// Tags within a row are pipe-separated ("|") to keep each dish on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dishes.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// domainRowToResponse maps a domain.ExportRow to the JSON ExportRow type.
// Fields that are empty strings become nil pointers (omitempty in JSON).
func domainRowToResponse(r domain.ExportRow) ExportRow {
	id, _ := uuid.Parse(r.ID)
	row := ExportRow{
		Id:        id,
		Name:      r.Name,
		Tags:      r.Tags,
		ImageURL:  optional(r.ImageURL),
		SearchURL: optional(r.SearchURL),
	}
	if row.Tags == nil {
		row.Tags = []string{}
	}
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.ID,
		r.Name,
		strings.Join(r.Tags, "|"),
		r.ImageURL,
		r.SearchURL,
	}
}
