// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Lebar maksimum gambar yang disimpan; lebih besar → di-resize proporsional.
const maxImageWidth = 1600

// ConvertImageToWebP membaca file gambar dari multipart dan mengembalikan
// hasil re-encode webp (quality 80). Error kalau bukan gambar yang bisa
// didekode — caller memutuskan fallback simpan apa adanya.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode gambar gagal: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return out.Bytes(), nil
}

// IsConvertibleImage menebak dari nama file apakah layak dikonversi webp.
func IsConvertibleImage(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
