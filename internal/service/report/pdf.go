package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

// pdfGenerator assembles a minimal single-font PDF by hand: one page object
// per block of lines, a text stream per page, then the xref table. Enough for
// tabular exports without pulling in a rendering engine.
type pdfGenerator struct{}

const pdfLinesPerPage = 52

func (pdfGenerator) Render(ds report.Dataset) ([]byte, error) {
	lines := []string{
		ds.Title,
		"Generated at " + ds.GeneratedAt.Format("2006-01-02 15:04:05") + " UTC",
		"",
		strings.Join(ds.Columns, " | "),
	}
	for _, row := range ds.Rows {
		lines = append(lines, strings.Join(row, " | "))
	}

	return buildPDF(lines), nil
}

func (pdfGenerator) ContentType() string { return "application/pdf" }

func (pdfGenerator) Extension() string { return "pdf" }

func buildPDF(lines []string) []byte {
	pages := make([][]string, 0, 1)
	for len(lines) > pdfLinesPerPage {
		pages = append(pages, lines[:pdfLinesPerPage])
		lines = lines[pdfLinesPerPage:]
	}
	pages = append(pages, lines)

	// Objects: 1 catalog, 2 pages, 3 font, then a page + content pair per page.
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+i*2))
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), len(pages)),
		"3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
	}

	for i, pageLines := range pages {
		pageNum := 4 + i*2
		contentNum := pageNum + 1

		var content strings.Builder
		content.WriteString("BT\n/F1 10 Tf\n14 TL\n50 800 Td\n")
		for j, line := range pageLines {
			escaped := pdfEscape(line)
			if j == 0 {
				content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
				continue
			}
			content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
		}
		content.WriteString("ET")
		stream := content.String()

		objects = append(objects,
			fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n", pageNum, contentNum),
			fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", contentNum, len(stream), stream),
		)
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes()
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
