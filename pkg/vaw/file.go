package vaw

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mholt/archiver/v3"
)

// IsCompressed returns true if the file is gzip compressed, judged by its extension.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gz")
}

// openFile opens a VAW file for reading. Gzip compressed files are decompressed.
// It is the caller's responsibility to call Close when done.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}
	defer f.Close()

	// VAW files are small, so decompress them at once.
	var buf bytes.Buffer
	if err := archiver.NewGz().Decompress(f, &buf); err != nil {
		return nil, errors.Wrapf(err, "%s: decompress", path)
	}
	return io.NopCloser(&buf), nil
}

// Compress compresses a VAW file using the gzip format and returns the path of the compressed file.
// The source file will be removed if the compression finishes without errors.
func Compress(path string) (string, error) {
	if IsCompressed(path) {
		return path, nil
	}

	dst := path + ".gz"
	if err := archiver.CompressFile(path, dst); err != nil {
		return "", errors.Wrapf(err, "%s: compress", path)
	}
	if err := os.Remove(path); err != nil {
		return dst, err
	}
	return dst, nil
}
