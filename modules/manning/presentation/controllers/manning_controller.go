// Package controllers exposes manning-table generation over HTTP. Every
// request runs the full pipeline on its own state; nothing is shared or
// cached between requests.
package controllers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/domain/position"
	"github.com/dkusuma/manning/modules/manning/infrastructure/tabular"
	"github.com/dkusuma/manning/modules/manning/presentation/excel"
	"github.com/dkusuma/manning/modules/manning/services"
)

const (
	masterField     = "master"
	structuralField = "structural"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ManningController struct {
	log       *logrus.Logger
	cleaner   *services.CleanerService
	manning   *services.ManningTableService
	maxUpload int64
}

func NewManningController(log *logrus.Logger, cleaner *services.CleanerService, manning *services.ManningTableService, maxUpload int64) *ManningController {
	return &ManningController{
		log:       log,
		cleaner:   cleaner,
		manning:   manning,
		maxUpload: maxUpload,
	}
}

func (c *ManningController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Health).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cleaned-data", c.CleanedData).Methods(http.MethodPost)
	api.HandleFunc("/manning-table", c.ManningTable).Methods(http.MethodPost)
}

func (c *ManningController) Health(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CleanedData accepts multipart "master" and "structural" workbooks and
// responds with the cleaned-data workbook.
func (c *ManningController) CleanedData(w http.ResponseWriter, r *http.Request) {
	roster, catalog, ok := c.readInputs(w, r)
	if !ok {
		return
	}
	records, err := c.cleaner.Clean(r.Context(), roster, catalog)
	if err != nil {
		c.writeError(w, err)
		return
	}
	f, err := excel.WriteCleanedData(records)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeWorkbook(w, f, "CleanedData")
}

// ManningTable accepts multipart "master" and "structural" workbooks, runs
// cleaning plus aggregation, and responds with the styled manning-table
// workbook.
func (c *ManningController) ManningTable(w http.ResponseWriter, r *http.Request) {
	roster, catalog, ok := c.readInputs(w, r)
	if !ok {
		return
	}
	records, err := c.cleaner.Clean(r.Context(), roster, catalog)
	if err != nil {
		c.writeError(w, err)
		return
	}
	rows, err := c.manning.Generate(r.Context(), records, catalog)
	if err != nil {
		c.writeError(w, err)
		return
	}
	f, err := excel.WriteManningTable(rows)
	if err != nil {
		c.writeError(w, err)
		return
	}
	c.writeWorkbook(w, f, "ManningTable")
}

// readInputs parses the multipart upload and maps both files onto the
// domain input types. On failure it writes the error response itself and
// returns ok=false.
func (c *ManningController) readInputs(w http.ResponseWriter, r *http.Request) ([]employee.RosterRow, []position.Record, bool) {
	if err := r.ParseMultipartForm(c.maxUpload); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return nil, nil, false
	}
	masterFile, err := formFile(r, masterField)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, nil, false
	}
	structuralFile, err := formFile(r, structuralField)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, nil, false
	}

	masterTable, err := c.readTable(masterFile, "MasterData")
	if err != nil {
		c.writeError(w, err)
		return nil, nil, false
	}
	structuralTable, err := c.readTable(structuralFile, "StructuralMapping")
	if err != nil {
		c.writeError(w, err)
		return nil, nil, false
	}

	roster, err := tabular.Roster(masterTable)
	if err != nil {
		c.writeError(w, err)
		return nil, nil, false
	}
	catalog, err := tabular.Catalog(structuralTable)
	if err != nil {
		c.writeError(w, err)
		return nil, nil, false
	}
	return roster, catalog, true
}

func formFile(r *http.Request, field string) (*multipart.FileHeader, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, errors.Errorf("missing file field %q", field)
	}
	return r.MultipartForm.File[field][0], nil
}

func (c *ManningController) writeWorkbook(w http.ResponseWriter, f *excelize.File, stem string) {
	defer func() { _ = f.Close() }()
	name := fmt.Sprintf("%s_%s.xlsx", stem, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := f.Write(w); err != nil {
		c.log.WithError(err).Error("write workbook response")
	}
}

func (c *ManningController) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, tabular.ErrMissingColumn) {
		status = http.StatusUnprocessableEntity
	}
	c.log.WithError(err).Warn("request failed")
	c.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (c *ManningController) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.log.WithError(err).Error("encode json response")
	}
}

func (c *ManningController) readTable(fh *multipart.FileHeader, name string) (*tabular.Table, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", name)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
		return tabular.ReadCSV(f, name)
	}
	return tabular.ReadXLSX(f, name)
}
