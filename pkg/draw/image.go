package draw

import (
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
/// IMAGE SNIFFING
///////////////////////////////////////////////////////////////////////////////

/**
* SniffImage inspects raw image bytes and returns the format ("png" or
* "jpeg") and the pixel dimensions, read straight from the file header
* without a full decode. Used to size club badges and player photos
* dropped onto a scene.
 */
func SniffImage(content []byte) (string, int, int, error) {
	if len(content) < 4 {
		return "", 0, 0, fmt.Errorf("content too short to determine image type")
	}

	// PNG signature 89 50 4E 47, IHDR width and height at bytes 16..23
	if content[0] == 0x89 && content[1] == 0x50 && content[2] == 0x4E && content[3] == 0x47 {
		if len(content) < 24 {
			return "", 0, 0, fmt.Errorf("truncated png header")
		}
		w := int(content[16])<<24 | int(content[17])<<16 | int(content[18])<<8 | int(content[19])
		h := int(content[20])<<24 | int(content[21])<<16 | int(content[22])<<8 | int(content[23])
		return "png", w, h, nil
	}

	// JPEG signature FF D8 FF, dimensions live in the SOF segment
	if content[0] == 0xFF && content[1] == 0xD8 && content[2] == 0xFF {
		w, h, err := jpegDimensions(content)
		if err != nil {
			return "", 0, 0, err
		}
		return "jpeg", w, h, nil
	}

	return "", 0, 0, fmt.Errorf("unsupported image format")
}

// walks the jpeg segments to the first SOF marker
// layout: FF Cx [len hi] [len lo] [precision] [h hi] [h lo] [w hi] [w lo]
func jpegDimensions(data []byte) (int, int, error) {
	for i := 2; i+9 <= len(data); {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker >= 0xC0 && marker <= 0xC2 {
			h := int(data[i+5])<<8 | int(data[i+6])
			w := int(data[i+7])<<8 | int(data[i+8])
			if w == 0 || h == 0 {
				return 0, 0, fmt.Errorf("jpeg sof segment has zero dimensions")
			}
			return w, h, nil
		}
		// standalone markers carry no length field
		if marker == 0xD8 || marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			i += 2
			continue
		}
		length := int(data[i+2])<<8 | int(data[i+3])
		if length < 2 {
			return 0, 0, fmt.Errorf("malformed jpeg segment at offset %d", i)
		}
		i += 2 + length
	}
	return 0, 0, fmt.Errorf("no jpeg sof marker found")
}

/**
* NewRaster builds a Raster from raw png or jpeg bytes, placed with its
* top left corner at x,y and scaled to the given width in scene units.
* The height follows from the image aspect ratio.
 */
func NewRaster(content []byte, x, y, width, zorder float64) (*Raster, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive")
	}
	kind, pw, ph, err := SniffImage(content)
	if err != nil {
		return nil, fmt.Errorf("failed to size image: %w", err)
	}
	if pw == 0 || ph == 0 {
		return nil, fmt.Errorf("image has zero dimensions")
	}
	return &Raster{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  width * float64(ph) / float64(pw),
		Kind:    kind,
		Content: content,
		Zorder:  zorder,
	}, nil
}
