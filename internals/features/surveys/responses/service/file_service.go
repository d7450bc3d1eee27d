package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	helper "mysteryshopper_backend/internals/helpers"
)

/* =========================================================
   FILE SERVICE
   Upload disimpan di disk lokal dengan path terpartisi tanggal:
   uploads/{yyyy}/{mm}/{uuid}.{ext}. Nama selalu unik, jadi
   upload paralel aman tanpa locking tambahan.
========================================================= */

type SavedFile struct {
	FileName     string
	ContentType  string
	SizeBytes    int64
	RelativePath string
}

type FileService struct {
	Root string // root folder statis, mis. "wwwroot"
	Now  func() time.Time
}

func NewFileService(root string) *FileService {
	return &FileService{
		Root: root,
		Now:  func() time.Time { return time.Now().UTC() },
	}
}

// BuildRelativePath membentuk path relatif unik untuk satu upload.
func (f *FileService) BuildRelativePath(ext string) string {
	now := f.Now()
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	return fmt.Sprintf("uploads/%04d/%02d/%s.%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
}

// SaveUpload menulis file multipart ke disk. Gambar dikonversi ke WebP
// supaya hemat storage; tipe lain disimpan apa adanya.
func (f *FileService) SaveUpload(fh *multipart.FileHeader) (*SavedFile, error) {
	ext := filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")

	var data []byte
	if helper.IsConvertibleImage(fh.Filename) {
		converted, err := helper.ConvertImageToWebP(fh)
		if err != nil {
			return nil, fmt.Errorf("gagal konversi gambar: %w", err)
		}
		data = converted
		ext = ".webp"
		contentType = "image/webp"
	} else {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("gagal buka upload: %w", err)
		}
		defer src.Close()
		data, err = io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("gagal baca upload: %w", err)
		}
	}

	rel := f.BuildRelativePath(ext)
	full := filepath.Join(f.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("gagal buat folder upload: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return nil, fmt.Errorf("gagal tulis file: %w", err)
	}

	return &SavedFile{
		FileName:     fh.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(data)),
		RelativePath: rel,
	}, nil
}

// KindForContentType menebak jenis media dari content type upload.
func KindForContentType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return respmodel.MediaKindImage
	case strings.HasPrefix(contentType, "video/"):
		return respmodel.MediaKindVideo
	case strings.HasPrefix(contentType, "audio/"):
		return respmodel.MediaKindAudio
	default:
		return respmodel.MediaKindOther
	}
}
