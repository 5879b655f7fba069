package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a minimal png header up to the IHDR dimensions, 640x480
func pngHeader(width, height int) []byte {
	b := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R',
	}
	b = append(b,
		byte(width>>24), byte(width>>16), byte(width>>8), byte(width),
		byte(height>>24), byte(height>>16), byte(height>>8), byte(height))
	return b
}

// SOI, one APP0 segment, then a baseline SOF0 carrying the dimensions
func jpegHeader(width, height int) []byte {
	b := []byte{0xFF, 0xD8, 0xFF}
	b = append(b, 0xE0, 0x00, 0x04, 0x00, 0x00)
	b = append(b, 0xFF, 0xC0, 0x00, 0x11, 0x08,
		byte(height>>8), byte(height),
		byte(width>>8), byte(width))
	return b
}

func TestSniffImagePNG(t *testing.T) {
	kind, w, h, err := SniffImage(pngHeader(640, 480))
	require.NoError(t, err)
	assert.Equal(t, "png", kind)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestSniffImageJPEG(t *testing.T) {
	kind, w, h, err := SniffImage(jpegHeader(256, 128))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", kind)
	assert.Equal(t, 256, w)
	assert.Equal(t, 128, h)
}

func TestSniffImageErrors(t *testing.T) {
	_, _, _, err := SniffImage(nil)
	assert.Error(t, err)

	_, _, _, err = SniffImage([]byte("<svg></svg>"))
	assert.Error(t, err)

	// a png signature with no room for the header
	_, _, _, err = SniffImage([]byte{0x89, 0x50, 0x4E, 0x47})
	assert.Error(t, err)

	// a jpeg with no sof segment
	_, _, _, err = SniffImage([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x02})
	assert.Error(t, err)
}

func TestNewRaster(t *testing.T) {
	r, err := NewRaster(pngHeader(200, 100), 5, 10, 40, 2)
	require.NoError(t, err)
	assert.Equal(t, "png", r.Kind)
	assert.Equal(t, 40.0, r.Width)
	// the height follows the 2:1 aspect
	assert.Equal(t, 20.0, r.Height)
	assert.Equal(t, 2.0, r.Z())

	tag, err := r.Tag()
	require.NoError(t, err)
	assert.True(t, strings.Contains(tag, `data:image/png;base64,`))

	_, err = NewRaster(pngHeader(200, 100), 0, 0, -1, 0)
	assert.Error(t, err)

	_, err = NewRaster([]byte("nope"), 0, 0, 10, 0)
	assert.Error(t, err)
}
