// Package pdf renders catering events into the fixed-layout order document
// that gets broadcast to departments.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"cateringbot/internal/domain/entities"
	"cateringbot/internal/ports/output"
)

var _ output.DocumentRenderer = (*Renderer)(nil)

const (
	pageMargin  = 15.0
	pageWidth   = 210.0 // A4 portrait, mm
	contentLeft = pageMargin
	contentW    = pageWidth - 2*pageMargin
)

type approver struct {
	Role      string
	Name      string
	Signature string
}

var approvers = []approver{
	{"Prepared By", "Merhawi Solomon (Marketing Manager)", "merhawi.png"},
	{"Approved By", "Kirubel Yirdaw (Operational Manager)", "kirubel.png"},
	{"Approved By", "Mulu Hadush (General Manager)", "mulu.png"},
}

var billingLines = []string{
	"Please contact Mr. Merhawi Solomon for billing Instructions.",
	"Note: First Day: As per request. Subsequent Days: Based on the available number of Participants.",
}

var footerColumns = [3][2]string{
	{"Phone: +251-93-028-5483", "Website: www.planethotelethiopia.com"},
	{"Email: contact@planethotelethiopia.com", "Address: Tigray, Ethiopia"},
	{"Fax: 0344405717", "Location: Hawelty street, Mekele"},
}

// Renderer produces the event order document. Output is a pure function of
// the event fields, the static assets under assetsDir and the configured
// department list; the embedded creation date comes from the event record,
// so identical inputs produce identical bytes.
type Renderer struct {
	assetsDir string
	outputDir string
}

func NewRenderer(assetsDir, outputDir string) *Renderer {
	return &Renderer{assetsDir: assetsDir, outputDir: outputDir}
}

// Render writes the document for event to outputDir and returns its path.
// The file name embeds company, event date and event id, so it is unique per
// persisted event.
func (r *Renderer) Render(event *entities.Event, departments []string) (string, error) {
	doc := r.build(event, departments)
	if err := doc.Error(); err != nil {
		return "", fmt.Errorf("render event document: %w", err)
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.outputDir, DocumentFileName(event))
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write event document: %w", err)
	}
	return path, nil
}

// DocumentFileName is <company>_<eventDate>_<id>.pdf with path separators
// stripped out of the company name.
func DocumentFileName(event *entities.Event) string {
	company := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '-'
		}
		return r
	}, event.CompanyName)
	return fmt.Sprintf("%s_%s_%d.pdf", company, event.EventDate, event.ID)
}

func (r *Renderer) build(event *entities.Event, departments []string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(event.CreatedAt)
	doc.SetModificationDate(event.CreatedAt)
	doc.SetMargins(pageMargin, 10, pageMargin)
	doc.SetAutoPageBreak(true, 45)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	// Letterhead. The logo is optional; a missing asset is skipped.
	logo := filepath.Join(r.assetsDir, "logo.png")
	if fileExists(logo) {
		doc.ImageOptions(logo, contentLeft, 3, contentW, 0, false,
			fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}
	doc.SetDrawColor(0, 0, 0)
	doc.Line(contentLeft, 28, pageWidth-pageMargin, 28)
	doc.SetY(31)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 4, fmt.Sprintf("Event ID: %d", event.ID), "", 1, "R", false, 0, "")
	doc.CellFormat(0, 4, fmt.Sprintf("Date: %s", event.CreatedAt.Format("2006-01-02")), "", 1, "R", false, 0, "")
	doc.Ln(4)

	r.section(doc, "Client Info", func() {
		bulletList(doc, tr, []string{
			"Client Name: " + event.ClientName,
			"Company Name: " + event.CompanyName,
			"Company TIN no.: " + event.TINNumber,
			"Contact Number: " + event.ContactNumber,
		})
	})

	r.section(doc, "Event Details", func() {
		bulletList(doc, tr, []string{
			"Event Name: " + event.EventName,
			"Event Date: " + event.EventDate,
			"Event Time: " + orNotSpecified(event.EventTime),
			fmt.Sprintf("Participants: %d", event.Participants),
			"Location: " + orNotSpecified(event.Location),
			"Duration: " + orNotSpecified(event.Duration),
		})
	})

	r.section(doc, "Services", func() {
		services := orNotSpecified(event.Services)
		if items := splitServices(services); items != nil {
			bulletList(doc, tr, items)
		} else {
			doc.MultiCell(contentW, 5, tr(services), "", "L", false)
		}
	})

	r.section(doc, "Billing Instruction", func() {
		bulletList(doc, tr, billingLines)
	})

	r.section(doc, "Service Approval", func() {
		for _, a := range approvers {
			y := doc.GetY()
			doc.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", a.Role, a.Name)), "", 1, "L", false, 0, "")
			sig := filepath.Join(r.assetsDir, "signatures", a.Signature)
			if fileExists(sig) {
				doc.ImageOptions(sig, contentLeft+115, y-2, 22, 0, false,
					fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
			}
			doc.Ln(2)
		}
	})

	r.section(doc, "CC - Department", func() {
		colW := contentW / 3
		for i, department := range departments {
			ln := 0
			if i%3 == 2 || i == len(departments)-1 {
				ln = 1
			}
			doc.CellFormat(colW, 5, tr(department), "", ln, "L", false, 0, "")
		}
	})

	r.footer(doc)
	return doc
}

// section prints a blue bold title and hands the body back to the caller.
func (r *Renderer) section(doc *fpdf.Fpdf, title string, body func()) {
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(0, 0, 255)
	doc.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	body()
	doc.Ln(4)
}

func (r *Renderer) footer(doc *fpdf.Fpdf) {
	doc.SetY(-40)
	y := doc.GetY()
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.3)
	doc.Line(contentLeft, y, pageWidth-pageMargin, y)
	doc.Ln(3)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(128, 128, 128)
	colW := contentW / 3
	aligns := [3]string{"L", "C", "R"}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			ln := 0
			if col == 2 {
				ln = 1
			}
			doc.CellFormat(colW, 4, footerColumns[col][row], "", ln, aligns[col], false, 0, "")
		}
	}
}

func bulletList(doc *fpdf.Fpdf, tr func(string) string, items []string) {
	for _, item := range items {
		doc.SetX(contentLeft + 5)
		doc.MultiCell(contentW-5, 5, tr("• "+item), "", "L", false)
	}
}

// splitServices treats a comma-separated value as a list; a plain value
// renders as flowing text (nil return).
func splitServices(s string) []string {
	if !strings.Contains(s, ",") {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
