package infrastructure

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var ErrInvalidPDF = errors.New("invalid PDF output")

// VerifyPDF checks that b parses as a PDF with at least one page and returns
// the page count.
func VerifyPDF(b []byte) (int, error) {
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		return 0, fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(b))
	}
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	n := r.NumPage()
	if n < 1 {
		return 0, fmt.Errorf("%w: no pages", ErrInvalidPDF)
	}
	return n, nil
}
