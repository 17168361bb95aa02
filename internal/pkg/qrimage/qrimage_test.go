//go:build unit

package qrimage_test

import (
	"bytes"
	"testing"

	"kidcare-booking/internal/pkg/qrimage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncodePNG(t *testing.T) {
	t.Run("renders png bytes", func(t *testing.T) {
		out, err := qrimage.EncodePNG("booking:bk_123", 128)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, pngMagic))
	})

	t.Run("out of range size falls back to default", func(t *testing.T) {
		out, err := qrimage.EncodePNG("booking:bk_123", 5000)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, pngMagic))
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := qrimage.EncodePNG("", 128)
		assert.ErrorIs(t, err, qrimage.ErrEmptyPayload)
	})
}
