package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/klauspost/compress/zip"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/repositories"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/utils"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	XLSX_CONTENT_TYPE = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDF_CONTENT_TYPE  = "application/pdf"
	ZIP_CONTENT_TYPE  = "application/zip"

	LOAD_WORKERS = 4

	PDF_FONT_FAMILY = "roster_utf8"
)

var ErrUploadDisabled = errors.New("export upload is not configured")

type sheet struct {
	kind    *models.Kind
	records []models.Tabular
}

// ExportService dumps every stored record as plain tables.
type ExportService struct {
	repo     *repositories.RecordRepository
	uploader Uploader
	pdfFont  string
	now      func() time.Time
}

type ExportOption func(*ExportService)

func WithUploader(uploader Uploader) ExportOption {
	return func(e *ExportService) {
		e.uploader = uploader
	}
}

// WithPDFFont replaces the embedded Go Regular font of the roster with a
// TrueType font file.
func WithPDFFont(path string) ExportOption {
	return func(e *ExportService) {
		e.pdfFont = path
	}
}

func NewExportService(repo *repositories.RecordRepository, opts ...ExportOption) *ExportService {
	export := &ExportService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(export)
	}
	return export
}

func (e *ExportService) load(ctx context.Context) ([]sheet, *res.ErrorRes) {
	kinds := models.Kinds()
	sheets := make([]sheet, len(kinds))

	errRes := utils.Concurrency(ctx, LOAD_WORKERS, len(kinds), func(
		ctx context.Context,
		index int,
		setError func(errRes *res.ErrorRes),
	) {
		records, errRes := e.repo.GetRecords(ctx, kinds[index], 0, 0)
		if errRes != nil {
			setError(errRes)
			return
		}
		sheets[index] = sheet{
			kind:    kinds[index],
			records: records,
		}
	})
	if errRes != nil {
		return nil, errRes
	}
	return sheets, nil
}

// Workbook has one sheet per collection: a header row of field ids, then
// one row per record.
func (e *ExportService) Workbook(ctx context.Context) (*excelize.File, *res.ErrorRes) {
	sheets, errRes := e.load(ctx)
	if errRes != nil {
		return nil, errRes
	}

	file := excelize.NewFile()
	for i, sheet := range sheets {
		sheetName := sheet.kind.Collection
		if i == 0 {
			file.SetSheetName("Sheet1", sheetName)
		} else {
			file.NewSheet(sheetName)
		}
		header := sheet.kind.New().Columns()
		if err := setRow(file, sheetName, 1, stringsToRow(header)); err != nil {
			return nil, err
		}
		for j, record := range sheet.records {
			if err := setRow(file, sheetName, j+2, record.Row()); err != nil {
				return nil, err
			}
		}
	}
	return file, nil
}

func stringsToRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, value := range values {
		row[i] = value
	}
	return row
}

func setRow(file *excelize.File, sheetName string, row int, values []interface{}) *res.ErrorRes {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err == nil {
		err = file.SetSheetRow(sheetName, cell, &values)
	}
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func (e *ExportService) WriteWorkbook(ctx context.Context, w io.Writer) *res.ErrorRes {
	file, errRes := e.Workbook(ctx)
	if errRes != nil {
		return errRes
	}
	defer file.Close()
	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// PDF writes a roster: one section per collection, one line per record.
func (e *ExportService) PDF(ctx context.Context, w io.Writer) *res.ErrorRes {
	sheets, errRes := e.load(ctx)
	if errRes != nil {
		return errRes
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	if e.pdfFont != "" {
		pdf.AddUTF8Font(PDF_FONT_FAMILY, "", e.pdfFont)
	} else {
		pdf.AddUTF8FontFromBytes(PDF_FONT_FAMILY, "", goregular.TTF)
	}
	if err := pdf.Error(); err != nil {
		return &res.ErrorRes{
			Err:        fmt.Errorf("pdf font: %w", err),
			StatusCode: http.StatusInternalServerError,
		}
	}
	pdf.AddPage()
	pdf.SetFont(PDF_FONT_FAMILY, "", 14)
	pdf.Cell(0, 8, "School records")
	pdf.Ln(6)
	pdf.SetFont(PDF_FONT_FAMILY, "", 8)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", e.now().Format("2006-01-02")))
	pdf.Ln(10)

	for _, sheet := range sheets {
		pdf.SetFont(PDF_FONT_FAMILY, "", 12)
		pdf.Cell(0, 7, fmt.Sprintf("%ss (%d)", sheet.kind.Label, len(sheet.records)))
		pdf.Ln(8)
		pdf.SetFont(PDF_FONT_FAMILY, "", 9)
		for i, record := range sheet.records {
			pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, rosterLine(record)), "", "", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func rosterLine(record models.Tabular) string {
	columns := record.Columns()
	parts := []string{}
	for i, value := range record.Row() {
		text := fmt.Sprint(value)
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", columns[i], text))
	}
	return strings.Join(parts, ", ")
}

// Archive writes a zip holding records.xlsx and records.pdf.
func (e *ExportService) Archive(ctx context.Context, w io.Writer) *res.ErrorRes {
	archive := zip.NewWriter(w)

	entries := []struct {
		name  string
		write func(context.Context, io.Writer) *res.ErrorRes
	}{
		{"records.xlsx", e.WriteWorkbook},
		{"records.pdf", e.PDF},
	}
	for _, entry := range entries {
		file, err := archive.Create(entry.name)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		if errRes := entry.write(ctx, file); errRes != nil {
			return errRes
		}
	}
	if err := archive.Close(); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

// Upload stores the workbook in the export bucket and returns its location.
func (e *ExportService) Upload(ctx context.Context, key string) (string, *res.ErrorRes) {
	if e.uploader == nil {
		return "", &res.ErrorRes{
			Err:        ErrUploadDisabled,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if key == "" {
		key = fmt.Sprintf("exports/records-%s.xlsx", e.now().UTC().Format("20060102T150405Z"))
	}

	var buf bytes.Buffer
	if errRes := e.WriteWorkbook(ctx, &buf); errRes != nil {
		return "", errRes
	}
	location, err := e.uploader.UploadFile(ctx, key, XLSX_CONTENT_TYPE, &buf)
	if err != nil {
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return location, nil
}
