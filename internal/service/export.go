package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/dto"
	"github.com/palletdesk/pallet-service/internal/repository"
)

// ErrExportEmpty is returned when the filtered pallet set is empty. An export
// never produces an empty document.
var ErrExportEmpty = errors.New("no pallets match the export filter")

// ExportFormat identifies a supported export document format.
type ExportFormat string

// Supported export formats.
const (
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
)

// utf8BOM is prepended to CSV output so spreadsheet applications detect the
// encoding and render Turkish characters correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Column headers of the tabular exports, matching the legacy reports.
var (
	csvHeaders = []string{
		"Palet Adı", "Firma", "Fiyat (TL)", "Toplam Hacim (desi)",
		"Üst Tahta Boyutları", "Alt Tahta Boyutları",
		"Kapama Tahta Boyutları", "Takoz Boyutları",
	}
	pdfHeaders = []string{
		"Palet Adı", "Firma", "Fiyat (TL)", "Toplam Hacim (desi)",
		"Üst Tahta", "Alt Tahta", "Kapama", "Takoz",
	}
)

// ExportFile is a rendered export document ready to be served as a download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
}

// ExportService renders the caller's filtered pallet catalog into a
// downloadable document.
type ExportService interface {
	ExportPallets(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter, format ExportFormat) (*ExportFile, error)
}

// ExportServiceImpl implements ExportService.
type ExportServiceImpl struct {
	companyRepo repository.CompanyRepositoryInterface
	palletRepo  repository.PalletRepositoryInterface
	now         func() time.Time
}

// NewExportService creates a new export service.
func NewExportService(
	companyRepo repository.CompanyRepositoryInterface,
	palletRepo repository.PalletRepositoryInterface,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		companyRepo: companyRepo,
		palletRepo:  palletRepo,
		now:         time.Now,
	}
}

// exportRow is one rendered table row shared by all formats.
type exportRow struct {
	Name    string
	Company string
	Price   string
	Volume  string
	Upper   string
	Lower   string
	Closure string
	Block   string
}

func (r exportRow) cells() []string {
	return []string{r.Name, r.Company, r.Price, r.Volume, r.Upper, r.Lower, r.Closure, r.Block}
}

// ExportPallets fetches the owner's pallets matching the filter and renders
// them in the requested format. The same filter semantics apply as in the
// catalog listing; an empty result yields ErrExportEmpty.
func (s *ExportServiceImpl) ExportPallets(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter, format ExportFormat) (*ExportFile, error) {
	rows, err := s.collectRows(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrExportEmpty
	}

	stamp := s.now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := renderCSV(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to render csv: %w", err)
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("paletler_%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
			Rows:        len(rows),
		}, nil
	case FormatPDF:
		data, err := renderPDF(rows, s.now())
		if err != nil {
			return nil, fmt.Errorf("failed to render pdf: %w", err)
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("paletler_%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
			Rows:        len(rows),
		}, nil
	case FormatXLSX:
		data, err := renderXLSX(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to render xlsx: %w", err)
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("paletler_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
			Rows:        len(rows),
		}, nil
	default:
		return nil, &dto.ValidationError{Field: "format", Message: "must be csv, pdf or xlsx"}
	}
}

// collectRows loads the filtered pallets with their company names resolved.
func (s *ExportServiceImpl) collectRows(ctx context.Context, ownerID primitive.ObjectID, filter dto.PalletFilter) ([]exportRow, error) {
	companies, err := s.companyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	companyIDs := make([]primitive.ObjectID, len(companies))
	names := make(map[primitive.ObjectID]string, len(companies))
	for i, c := range companies {
		companyIDs[i] = c.ID
		names[c.ID] = c.Name
	}

	pallets, err := s.palletRepo.Find(ctx, filter, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list pallets: %w", err)
	}

	rows := make([]exportRow, len(pallets))
	for i, p := range pallets {
		rows[i] = exportRow{
			Name:    p.Name,
			Company: names[p.CompanyID],
			Price:   fmt.Sprintf("%.2f", p.Price),
			Volume:  fmt.Sprintf("%.2f", p.Volumes.Total),
			Upper:   p.Dimensions.UpperBoardLabel(),
			Lower:   p.Dimensions.LowerBoardLabel(),
			Closure: p.Dimensions.ClosureLabel(),
			Block:   p.Dimensions.BlockLabel(),
		}
	}
	return rows, nil
}

// renderCSV writes a BOM-prefixed UTF-8 CSV document.
func renderCSV(rows []exportRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row.cells()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfColumnWidths spreads the eight columns over a landscape A4 page
// (277mm printable width).
var pdfColumnWidths = []float64{42, 42, 22, 26, 37, 37, 37, 34}

// renderPDF writes a paginated landscape A4 table. Text is transliterated to
// code page 1254 so Turkish characters survive the core PDF fonts.
func renderPDF(rows []exportRow, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Sayfa %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range pdfHeaders {
			pdf.CellFormat(pdfColumnWidths[i], 9, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Palet Listesi"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, generatedAt.Format("02.01.2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	writeHeader()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, marginBottom := pdf.GetMargins()
	limit := pageHeight - marginBottom - 20

	for i, row := range rows {
		if pdf.GetY() > limit {
			pdf.AddPage()
			writeHeader()
		}

		fill := i%2 == 1
		pdf.SetFillColor(240, 235, 220)
		for j, cell := range row.cells() {
			pdf.CellFormat(pdfColumnWidths[j], 8, tr(cell), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderXLSX writes a styled worksheet with a trailing summary row.
func renderXLSX(rows []exportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Paletler"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range csvHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		cell := col + "1"
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, cell := range row.cells() {
			col, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, rowIdx+2), cell); err != nil {
				return nil, err
			}
		}
	}

	summaryRow := len(rows) + 2
	summaryStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("Toplam: %d palet", len(rows))); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle); err != nil {
		return nil, err
	}

	colWidths := []float64{24, 24, 12, 16, 22, 22, 22, 20}
	for i, w := range colWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
