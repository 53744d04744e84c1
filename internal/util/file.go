package util

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectImage 根据文件内容识别 MIME 类型，仅允许图片
func DetectImage(reader io.Reader) (*mimetype.MIME, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return nil, err
	}
	if !IsImage(mtype.String()) {
		return mtype, errors.New("invalid file type: " + mtype.String())
	}
	return mtype, nil
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}

// SanitizeFilename 去掉路径部分，只保留安全字符
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
