// Package proof models delivery evidence captured by the driver app:
// proof photos, customer signatures and remittance receipts.
package proof

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrEmptyImage    = errors.New("image is empty")
	ErrImageTooLarge = errors.New("image is too large")
)

// Kind selects where an artifact is stored and how it is recorded.
type Kind int

const (
	KindPhoto Kind = iota + 1
	KindSignature
	KindRemittance
)

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindSignature:
		return "signature"
	case KindRemittance:
		return "remittance"
	default:
		return "unknown"
	}
}

const defaultExtension = "jpg"

var (
	dataURIPrefix = regexp.MustCompile(`^data:image/(\w+);base64,`)
	nonAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Image is raw image material plus the file extension it should be stored under.
type Image struct {
	data []byte
	ext  string
}

// FromFile reads an uploaded file. The extension comes from the client file name,
// stripped to alphanumerics, defaulting to jpg.
func FromFile(filename string, r io.Reader, maxBytes int64) (Image, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Image{}, fmt.Errorf("read upload: %w", err)
	}

	return newImage(data, extensionOf(filename), maxBytes)
}

// FromBase64 decodes an inline image, optionally prefixed with a data URI header.
// Images without a recognizable data URI are stored as png.
func FromBase64(encoded string, maxBytes int64) (Image, error) {
	ext := "png"
	if m := dataURIPrefix.FindStringSubmatch(encoded); m != nil {
		ext = normalizeExtension(m[1])
		encoded = encoded[len(m[0]):]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return Image{}, fmt.Errorf("decode base64 image: %w", err)
	}

	return newImage(data, ext, maxBytes)
}

func newImage(data []byte, ext string, maxBytes int64) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return Image{}, ErrImageTooLarge
	}
	return Image{data: data, ext: ext}, nil
}

func (i Image) IsEmpty() bool {
	return len(i.data) == 0
}

func (i Image) Extension() string {
	return i.ext
}

func (i Image) Size() int {
	return len(i.data)
}

// Reader returns a fresh reader over the image bytes.
func (i Image) Reader() io.Reader {
	return bytes.NewReader(i.data)
}

func extensionOf(filename string) string {
	return normalizeExtension(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(nonAlnum.ReplaceAllString(ext, ""))
	switch ext {
	case "":
		return defaultExtension
	case "jpeg":
		return "jpg"
	default:
		return ext
	}
}
