package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// US letter at 96 CSS pixels per inch.
const (
	letterWidthIn  = 8.5
	letterHeightIn = 11.0
	viewportWidth  = 816
	viewportHeight = 1056
	captureScale   = 2
)

// ChromedpRenderer prints pages to PDF with a headless Chrome.
type ChromedpRenderer struct {
	ChromePath string
	Timeout    time.Duration
	log        *zap.Logger
}

func NewChromedpRenderer(chromePath string, timeout time.Duration, log *zap.Logger) *ChromedpRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChromedpRenderer{ChromePath: chromePath, Timeout: timeout, log: log}
}

// RenderHTMLToPDF loads html from a temporary file, waits for the resume root
// element and prints a single letter-size document with no margins.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, r.Timeout)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	start := time.Now()
	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(captureScale)),
		chromedp.Navigate("file://"+filepath.ToSlash(htmlPath)),
		chromedp.WaitReady("#resume-preview-content", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(letterWidthIn).
				WithPaperHeight(letterHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp print: %w", err)
	}

	pages, err := VerifyPDF(pdfBuf)
	if err != nil {
		return nil, err
	}
	r.log.Debug("pdf rendered", zap.Int("bytes", len(pdfBuf)), zap.Int("pages", pages), zap.Duration("elapsed", time.Since(start)))
	return pdfBuf, nil
}
