package util

import (
	"errors"
	"io"

	"github.com/h2non/filetype"
)

const (
	sniffLen        = 261
	unknownMimeType = "application/octet-stream"
)

// SniffContentType 按文件头识别 MIME 类型，识别后 reader 回到开头
func SniffContentType(r io.ReadSeeker) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return unknownMimeType, nil
	}
	return kind.MIME.Value, nil
}
