package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestPDF writes a minimal but well-formed PDF with the given number of
// pages and returns its path. Pages share one empty content stream; that is
// enough for both the page-range extractor and the renderer.
func writeTestPDF(t *testing.T, pages int) string {
	t.Helper()
	require.Greater(t, pages, 0)

	var b strings.Builder
	offsets := make([]int, 0, pages+4)

	writeObj := func(body string) {
		offsets = append(offsets, b.Len())
		b.WriteString(body)
	}

	b.WriteString("%PDF-1.4\n")

	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+4)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))
	writeObj("3 0 obj\n<< /Length 0 >>\nstream\n\nendstream\nendobj\n")
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Resources << >> /Contents 3 0 R >>\nendobj\n", i+4))
	}

	xrefOffset := b.Len()
	b.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)+1))
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		b.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	b.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset))

	path := filepath.Join(t.TempDir(), fmt.Sprintf("flyer_%dp.pdf", pages))
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}
