package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxOutputSize is the largest square edge, in pixels, accepted for an output.
const MaxOutputSize = 4096

// supportedExts are the raster formats the image encoder can write.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ValidateOutputPath checks that path names a writable raster file.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - The extension must be one the encoder supports (png, jpg, gif, bmp, tiff)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return New(ErrCodeInvalidPath, "unsupported output format %q for %s", ext, path)
	}

	return nil
}

// ValidateSize checks that an output edge length is within (0, MaxOutputSize].
func ValidateSize(size int) error {
	if size <= 0 {
		return New(ErrCodeInvalidSize, "output size must be positive, got %d", size)
	}
	if size > MaxOutputSize {
		return New(ErrCodeInvalidSize, "output size %d exceeds maximum of %d", size, MaxOutputSize)
	}
	return nil
}
