package llm

import (
	"encoding/base64"
	"fmt"
	"os"
)

// ReadAsDataURL reads a page image fully and encodes it as a base64 data URL.
// The rasterizer only emits JPEG, so the MIME type is fixed.
func ReadAsDataURL(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(b), nil
}
