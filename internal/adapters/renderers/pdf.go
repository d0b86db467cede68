package renderers

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFormat      = "pdf"
	pdfPageWidth   = 190.0
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
)

// PDFRenderer renders documents as PDF.
type PDFRenderer struct {
	pdf      *gofpdf.Fpdf
	tocItems []tocItem
}

type tocItem struct {
	title  string
	level  int
	linkID int
}

// NewPDFRenderer creates a new PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Format returns the output format name.
func (r *PDFRenderer) Format() string {
	return pdfFormat
}

// Render writes doc in PDF format.
func (r *PDFRenderer) Render(doc *domain.Document, output io.Writer) error {
	r.pdf = gofpdf.New("P", "mm", "A4", "")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetDrawColor(180, 180, 180) // Light gray for all borders
	r.tocItems = nil

	groups := sections(doc)

	// Links are created up front so the table of contents can point forward.
	r.collectTOC(groups)

	r.addTitlePage(doc)
	r.addTableOfContents()
	r.addContent(doc, groups)

	return r.pdf.Output(output)
}

func (r *PDFRenderer) collectTOC(groups []section) {
	r.tocItems = append(r.tocItems, tocItem{title: "Overview", level: 1, linkID: r.pdf.AddLink()})
	r.tocItems = append(r.tocItems, tocItem{title: "Endpoints", level: 1, linkID: r.pdf.AddLink()})

	for _, s := range groups {
		r.tocItems = append(r.tocItems, tocItem{title: s.title, level: 2, linkID: r.pdf.AddLink()})

		for _, ep := range s.endpoints {
			title := fmt.Sprintf("%s %s", formatMethod(ep.resolved.Method), ep.name)
			r.tocItems = append(r.tocItems, tocItem{title: title, level: 3, linkID: r.pdf.AddLink()})
		}
	}
}

func (r *PDFRenderer) addTitlePage(doc *domain.Document) {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.Ln(40)
	r.pdf.CellFormat(pdfPageWidth, 15, documentTitle(doc), "", 1, "C", false, 0, "")
	r.pdf.Ln(5)

	if doc.URL != "" {
		r.pdf.SetFont("Arial", "", 14)
		r.pdf.SetTextColor(100, 100, 100)
		r.pdf.CellFormat(pdfPageWidth, 8, doc.URL, "", 1, "C", false, 0, "")
		r.pdf.SetTextColor(0, 0, 0)
	}

	r.pdf.Ln(50)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(128, 128, 128)
	r.pdf.CellFormat(pdfPageWidth, 6, "API Reference Document", "", 1, "C", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *PDFRenderer) addTableOfContents() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.CellFormat(pdfPageWidth, 10, "Table of Contents", "", 1, "", false, 0, "")
	r.pdf.Ln(8)

	for _, item := range r.tocItems {
		indent := float64(item.level-1) * 8

		switch item.level {
		case 1:
			r.pdf.SetFont("Arial", "B", 12)
		case 2:
			r.pdf.SetFont("Arial", "B", 10)
		default:
			r.pdf.SetFont("Arial", "", 9)
		}

		r.pdf.SetX(pdfMarginLeft + indent)
		r.pdf.CellFormat(pdfPageWidth-indent, pdfLineHeight, truncate(item.title, 60), "", 1, "", false, item.linkID, "")
	}
}

func (r *PDFRenderer) addContent(doc *domain.Document, groups []section) {
	tocIndex := 0

	r.pdf.AddPage()
	r.setLinkDest(tocIndex)
	tocIndex++

	r.addSectionHeader("Overview")
	r.addOverview(doc, groups)

	r.pdf.AddPage()
	r.setLinkDest(tocIndex)
	tocIndex++

	r.addSectionHeader("Endpoints")

	for _, s := range groups {
		r.checkPageBreak(60)
		r.setLinkDest(tocIndex)
		tocIndex++

		r.pdf.SetFont("Arial", "B", 14)
		r.pdf.SetFillColor(240, 240, 240)
		r.pdf.CellFormat(pdfPageWidth, 8, s.title, "", 1, "", true, 0, "")
		r.pdf.Ln(4)

		r.addEndpointsSummary(s.endpoints, tocIndex)
		r.pdf.Ln(6)

		for _, ep := range s.endpoints {
			r.checkPageBreak(50)
			r.setLinkDest(tocIndex)
			tocIndex++

			r.addEndpoint(ep)
		}

		r.pdf.Ln(4)
	}
}

func (r *PDFRenderer) addOverview(doc *domain.Document, groups []section) {
	r.pdf.SetFont("Arial", "", 10)

	if doc.URL != "" {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.SetTextColor(0, 102, 204)
		r.pdf.CellFormat(pdfPageWidth, 6, doc.URL, "", 1, "", false, 0, doc.URL)
		r.pdf.SetTextColor(0, 0, 0)
		r.pdf.Ln(2)
	}

	colWidths := []float64{140, 50}
	r.addTableHeader(colWidths, []string{"Section", "Endpoints"})

	r.pdf.SetFont("Arial", "", 9)
	for _, s := range groups {
		r.addTableRow(colWidths, []string{s.title, fmt.Sprint(len(s.endpoints))}, []string{"L", "C"}, nil)
	}
	r.pdf.Ln(4)
}

func (r *PDFRenderer) setLinkDest(tocIndex int) {
	if tocIndex < len(r.tocItems) {
		r.pdf.SetLink(r.tocItems[tocIndex].linkID, -1, -1)
	}
}

func (r *PDFRenderer) addSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.CellFormat(pdfPageWidth, 10, title, "", 1, "", false, 0, "")
	r.pdf.Ln(4)
}

var methodColors = map[string][3]int{
	"GET":     {97, 175, 254},  // Blue
	"POST":    {73, 204, 144},  // Green
	"PUT":     {252, 161, 48},  // Orange
	"DELETE":  {249, 62, 62},   // Red
	"PATCH":   {80, 227, 194},  // Teal
	"HEAD":    {144, 97, 249},  // Purple
	"OPTIONS": {128, 128, 128}, // Gray
}

func (r *PDFRenderer) addEndpoint(ep endpoint) {
	method := formatMethod(ep.resolved.Method)

	color, ok := methodColors[method]
	if !ok {
		color = [3]int{128, 128, 128}
	}

	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetFillColor(color[0], color[1], color[2])
	r.pdf.SetTextColor(255, 255, 255)
	methodWidth := float64(len(method)*3) + 8
	r.pdf.CellFormat(methodWidth, 7, method, "", 0, "C", true, 0, "")

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.CellFormat(pdfPageWidth-methodWidth, 7, " "+ep.url, "", 1, "", false, 0, "")
	r.pdf.Ln(2)

	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(128, 128, 128)
	r.pdf.CellFormat(pdfPageWidth, 4, fmt.Sprintf("Link: %s", ep.name), "", 1, "", false, 0, "")
	r.pdf.CellFormat(pdfPageWidth, 4, fmt.Sprintf("Encoding: %s", formatEncoding(ep.resolved.Encoding)), "", 1, "", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)

	if ep.description != "" {
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.MultiCell(pdfPageWidth, 4, stripHTML(ep.description), "", "", false)
	}
	r.pdf.Ln(2)

	if len(ep.resolved.Fields) > 0 {
		r.addSubHeader("Fields")
		r.addFieldTable(ep)
	}

	// Separator
	r.pdf.Ln(2)
	r.pdf.SetDrawColor(220, 220, 220)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfPageWidth, r.pdf.GetY())
	r.pdf.SetDrawColor(180, 180, 180)
	r.pdf.Ln(6)
}

func (r *PDFRenderer) addSubHeader(title string) {
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetTextColor(60, 60, 60)
	r.pdf.CellFormat(pdfPageWidth, 6, title, "", 1, "", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *PDFRenderer) addFieldTable(ep endpoint) {
	colWidths := []float64{45, 25, 20, 100}
	r.addTableHeader(colWidths, []string{"Name", "Location", "Required", "Description"})

	r.pdf.SetFont("Arial", "", 8)
	for _, f := range ep.resolved.Fields {
		required := "No"
		if f.Required {
			required = "Yes"
		}

		contents := []string{f.Name, f.Location, required, stripHTML(f.Description)}
		r.addTableRow(colWidths, contents, []string{"L", "L", "C", "L"}, nil)
	}
	r.pdf.Ln(3)
}

func (r *PDFRenderer) addEndpointsSummary(endpoints []endpoint, startTocIndex int) {
	if len(endpoints) == 0 {
		return
	}

	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.CellFormat(pdfPageWidth, 6, "Endpoints in this section", "", 1, "", false, 0, "")
	r.pdf.Ln(2)

	colWidths := []float64{60, 110, 20}
	r.addTableHeader(colWidths, []string{"Link", "URL", "Method"})

	r.pdf.SetFont("Arial", "", 9)
	for i, ep := range endpoints {
		var linkIDs []int
		if idx := startTocIndex + i; idx < len(r.tocItems) {
			linkID := r.tocItems[idx].linkID
			linkIDs = []int{linkID, linkID, linkID}
		}

		contents := []string{truncate(ep.name, 40), ep.url, formatMethod(ep.resolved.Method)}
		r.addTableRow(colWidths, contents, []string{"L", "L", "C"}, linkIDs)
	}
}

func (r *PDFRenderer) addTableHeader(colWidths []float64, headers []string) {
	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(245, 245, 245)

	for i, header := range headers {
		r.pdf.CellFormat(colWidths[i], 6, header, "1", 0, "", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFRenderer) addTableRow(colWidths []float64, contents []string, aligns []string, linkIDs []int) {
	// Row height follows the cell with the most wrapped lines
	maxLines := 1
	for i, content := range contents {
		lines := r.pdf.SplitLines([]byte(content), colWidths[i])
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}

	rowHeight := float64(maxLines) * pdfLineHeight

	r.checkPageBreak(rowHeight)

	startX := r.pdf.GetX()
	startY := r.pdf.GetY()

	for i, content := range contents {
		width := colWidths[i]

		align := ""
		if len(aligns) > i {
			align = aligns[i]
		}

		linkID := 0
		if len(linkIDs) > i {
			linkID = linkIDs[i]
		}

		if linkID > 0 {
			r.pdf.SetTextColor(0, 102, 204)
		}

		r.pdf.SetXY(startX, startY)
		r.pdf.MultiCell(width, pdfLineHeight, content, "0", align, false)
		if linkID > 0 {
			r.pdf.Link(startX, startY, width, rowHeight, linkID)
			r.pdf.SetTextColor(0, 0, 0)
		}

		r.pdf.Rect(startX, startY, width, rowHeight, "D")

		startX += width
	}

	r.pdf.SetXY(pdfMarginLeft, startY+rowHeight)
}

func (r *PDFRenderer) checkPageBreak(height float64) {
	_, pageHeight := r.pdf.GetPageSize()
	_, _, _, bottomMargin := r.pdf.GetMargins()

	if r.pdf.GetY()+height > pageHeight-bottomMargin-10 {
		r.pdf.AddPage()
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	result := s
	for {
		start := strings.Index(result, "<")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], ">")
		if end == -1 {
			break
		}
		result = result[:start] + result[start+end+1:]
	}

	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	result = strings.ReplaceAll(result, "\n\n", "\n")

	return strings.TrimSpace(result)
}
