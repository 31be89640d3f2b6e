package invoice

import (
	"bytes"
	"fmt"

	"github.com/The-Batman-Code/laundry-service/business/booking"
	"github.com/The-Batman-Code/laundry-service/domain"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF produces the printable invoice document: header, parties,
// itemized lines, subtotal, tax and grand total.
func RenderPDF(inv domain.Invoice, request domain.PickupRequest, user domain.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "Laundry Service")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 6, fmt.Sprintf("Invoice %s", inv.ID))
	pdf.Ln(6)
	pdf.Cell(190, 6, fmt.Sprintf("Issued: %s", inv.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(190, 6, fmt.Sprintf("Estimated delivery: %s", inv.EstimatedDelivery.Format("2006-01-02")))
	pdf.Ln(10)

	address := request.Address.Data()
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(190, 6, "Billed to")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 6, fmt.Sprintf("%s (%s)", user.FullName, user.Email))
	pdf.Ln(6)
	pdf.Cell(190, 6, fmt.Sprintf("%s, %s, %s %s", address.Street, address.City, address.State, address.ZipCode))
	pdf.Ln(6)
	pdf.Cell(190, 6, fmt.Sprintf("Pickup slot: %s", request.TimeSlotID))
	pdf.Ln(10)

	// line items table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(90, 7, line.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", line.LineTotal()), "1", 1, "R", false, 0, "")
	}

	quote := booking.ComputeQuote(inv.Lines)

	pdf.Ln(4)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", quote.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(150, 7, "Tax (8%)", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", quote.Tax), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Amount due", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", inv.Amount), "", 1, "R", false, 0, "")

	if request.SpecialInstructions != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 5, "Instructions: "+request.SpecialInstructions, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
