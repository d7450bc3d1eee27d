package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildRelativePath_DatePartitioned(t *testing.T) {
	fs := NewFileService("wwwroot")
	fs.Now = func() time.Time {
		return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	}

	rel := fs.BuildRelativePath(".webp")

	pattern := regexp.MustCompile(`^uploads/2026/03/[0-9a-f-]{36}\.webp$`)
	assert.Regexp(t, pattern, rel)
}

func TestBuildRelativePath_UniquePerCall(t *testing.T) {
	fs := NewFileService("wwwroot")
	assert.NotEqual(t, fs.BuildRelativePath("mp4"), fs.BuildRelativePath("mp4"))
}

func TestKindForContentType(t *testing.T) {
	assert.Equal(t, "image", KindForContentType("image/webp"))
	assert.Equal(t, "video", KindForContentType("video/mp4"))
	assert.Equal(t, "audio", KindForContentType("audio/mpeg"))
	assert.Equal(t, "other", KindForContentType("application/pdf"))
}
