package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate("", 256)
		require.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Nil(t, result)
	})

	t.Run("returns error when content is whitespace only", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate("   \t\n", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("generates png of requested size", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Generate("WIFI:T:WPA;S:Home;P:secret;;", 300)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
	})

	t.Run("uses default size when size is not positive", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Generate("https://example.com", 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})

	t.Run("fails when content exceeds capacity", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate(strings.Repeat("x", 5000), 256)
		assert.ErrorIs(t, err, qrcode.ErrFailedToGenerateQRCode)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.GenerateBase64Image("https://example.com", 128)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = qrcode.GenerateBase64Image("", 128)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Matrix("https://example.com")
	require.NoError(t, err)

	n := len(m)
	require.Greater(t, n, 2*qrcode.QuietZone+21-1)
	for _, row := range m {
		require.Len(t, row, n)
	}

	for i := range qrcode.QuietZone {
		for j := range n {
			assert.False(t, m[i][j], "top quiet zone")
			assert.False(t, m[j][i], "left quiet zone")
		}
	}
	// Top-left corner of the top-left finder pattern is dark.
	assert.True(t, m[qrcode.QuietZone][qrcode.QuietZone])
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	out, err := qrcode.Terminal("https://example.com", false)
	require.NoError(t, err)
	assert.Greater(t, strings.Count(out, "\n"), 10)

	_, err = qrcode.Terminal(" ", false)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
