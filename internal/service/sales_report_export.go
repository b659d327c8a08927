package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/pkg/currency"
)

// GenerateSalesReportPDF renders the filtered ledger as a PDF and
// returns the bytes with a download filename.
func (s *AdminService) GenerateSalesReportPDF(ctx context.Context, filter core.SaleFilter) ([]byte, string, error) {
	records := s.Sales(ctx, filter)
	summary := core.AggregateSales(records)

	pdfBytes, err := renderSalesReportPDF(records, summary, reportRangeLabel(filter))
	if err != nil {
		return nil, "", err
	}

	return pdfBytes, reportFilename(filter), nil
}

func reportRangeLabel(filter core.SaleFilter) string {
	switch {
	case filter.Month != 0 && filter.Year != 0:
		return fmt.Sprintf("%s %d", time.Month(filter.Month), filter.Year)
	case filter.Month != 0:
		return fmt.Sprintf("%s (all years)", time.Month(filter.Month))
	case filter.Year != 0:
		return fmt.Sprintf("%d", filter.Year)
	default:
		return "All sales"
	}
}

func reportFilename(filter core.SaleFilter) string {
	switch {
	case filter.Month != 0 && filter.Year != 0:
		return fmt.Sprintf("sales-report-%04d-%02d.pdf", filter.Year, filter.Month)
	case filter.Month != 0:
		return fmt.Sprintf("sales-report-month-%02d.pdf", filter.Month)
	case filter.Year != 0:
		return fmt.Sprintf("sales-report-%04d.pdf", filter.Year)
	default:
		return "sales-report-all.pdf"
	}
}

func renderSalesReportPDF(records []core.SaleRecord, summary core.SalesSummary, rangeLabel string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, "Tales of Brownies", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 7, "Sales Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Range: %s", rangeLabel), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated At: %s", time.Now().Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Summary", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Revenue: %s", currency.FormatINR(summary.Revenue)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Orders: %d", summary.Count), "1", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Brownies Sold: %d", summary.ItemUnits), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Toppings Sold: %d", summary.ToppingUnits), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Order-Level Detail", "", 1, "L", false, 0, "")

	if len(records) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "No sales found for this report range.", "", 1, "L", false, 0, "")
	} else {
		for i, record := range records {
			ensurePageSpace(pdf, 35)

			pdf.SetFont("Arial", "B", 10)
			headerLine := fmt.Sprintf("%d) %s | %s %s",
				i+1, record.OrderID, record.Date, record.Time)
			pdf.MultiCell(0, 6, headerLine, "", "L", false)

			pdf.SetFont("Arial", "", 10)
			if record.CustomerInfo != nil {
				pdf.MultiCell(0, 5, fmt.Sprintf("Customer: %s | %s | %s",
					safeReportValue(record.CustomerInfo.Name),
					safeReportValue(record.CustomerInfo.Phone),
					safeReportValue(record.CustomerInfo.Address)), "", "L", false)
			}

			for _, item := range record.Items {
				itemLine := fmt.Sprintf("- %dx %s Brownie @ %s = %s",
					item.Quantity,
					item.Size,
					currency.FormatINR(item.BasePrice),
					currency.FormatINR(item.Total))
				if len(item.Toppings) > 0 {
					names := make([]string, len(item.Toppings))
					for j, topping := range item.Toppings {
						names[j] = topping.Name
					}
					itemLine += fmt.Sprintf(" (%s)", strings.Join(names, ", "))
				}
				pdf.MultiCell(0, 5, itemLine, "", "L", false)
			}

			pdf.MultiCell(0, 5, fmt.Sprintf("Order Total: %s", currency.FormatINR(record.Total)), "", "L", false)

			pdf.CellFormat(0, 1, "", "B", 1, "L", false, 0, "")
			pdf.Ln(1)
		}
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buffer.Bytes(), nil
}

func ensurePageSpace(pdf *gofpdf.Fpdf, minSpace float64) {
	_, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	usableBottom := pageHeight - bottomMargin
	if pdf.GetY()+minSpace > usableBottom {
		pdf.AddPage()
		pdf.SetX(leftMargin)
		pdf.SetRightMargin(rightMargin)
	}
}

func safeReportValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
