package proof_test

import (
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"driverapi/internal/core/domain/model/proof"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxBytes = 1024

func TestFromFile(t *testing.T) {
	t.Run("keeps sanitized extension", func(t *testing.T) {
		img, err := proof.FromFile("door step.J$PEG", strings.NewReader("jpegdata"), maxBytes)

		require.NoError(t, err)
		assert.Equal(t, "jpg", img.Extension())
		assert.Equal(t, 8, img.Size())
	})

	t.Run("defaults to jpg without extension", func(t *testing.T) {
		img, err := proof.FromFile("blob", strings.NewReader("x"), maxBytes)

		require.NoError(t, err)
		assert.Equal(t, "jpg", img.Extension())
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		_, err := proof.FromFile("a.png", strings.NewReader(""), maxBytes)

		require.ErrorIs(t, err, proof.ErrEmptyImage)
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		_, err := proof.FromFile("a.png", strings.NewReader(strings.Repeat("x", maxBytes+10)), maxBytes)

		require.ErrorIs(t, err, proof.ErrImageTooLarge)
	})
}

func TestFromBase64(t *testing.T) {
	raw := []byte("signature-bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("plain base64 is stored as png", func(t *testing.T) {
		img, err := proof.FromBase64(encoded, maxBytes)

		require.NoError(t, err)
		assert.Equal(t, "png", img.Extension())
		data, _ := io.ReadAll(img.Reader())
		assert.Equal(t, raw, data)
	})

	t.Run("data uri prefix is stripped", func(t *testing.T) {
		img, err := proof.FromBase64("data:image/jpeg;base64,"+encoded, maxBytes)

		require.NoError(t, err)
		assert.Equal(t, "jpg", img.Extension())
		data, _ := io.ReadAll(img.Reader())
		assert.Equal(t, raw, data)
	})

	t.Run("invalid base64 fails", func(t *testing.T) {
		_, err := proof.FromBase64("not base64 !!", maxBytes)

		require.Error(t, err)
	})

	t.Run("empty payload fails", func(t *testing.T) {
		_, err := proof.FromBase64("data:image/png;base64,", maxBytes)

		require.ErrorIs(t, err, proof.ErrEmptyImage)
	})
}
