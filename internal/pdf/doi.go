// Package pdf extracts bibliographic identifiers from local PDF files.
package pdf

import (
	"github.com/ledongthuc/pdf"

	"refdex/internal/doi"
)

// maxDOIPages bounds the search: the DOI is almost always on the first
// page of a published article.
const maxDOIPages = 3

// ExtractDOI searches the first few pages of a PDF for a DOI. Returns
// "" when no DOI is found; that is not an error.
func ExtractDOI(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := maxDOIPages
	if r.NumPage() < pages {
		pages = r.NumPage()
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if d, ok := doi.Parse(text); ok {
			return d, nil
		}
	}

	return "", nil
}
