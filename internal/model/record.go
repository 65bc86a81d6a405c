package model

import (
	"encoding/json"
	"fmt"
)

// Dimensions is a pixel width/height pair. On the wire it is a two-element
// JSON array, matching the canonical metadata format.
type Dimensions struct {
	Width  int
	Height int
}

// UnmarshalJSON decodes a `[w, h]` array.
func (d *Dimensions) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("dimensions: expected [width, height], got %d elements", len(pair))
	}
	d.Width, d.Height = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes the pair as a `[w, h]` array.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{d.Width, d.Height})
}

// String renders the pair as "WxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Equal reports whether both dimensions match exactly.
func (d Dimensions) Equal(other Dimensions) bool {
	return d.Width == other.Width && d.Height == other.Height
}

// ImageRecord is one entry of a canonical issue's metadata file. The file is
// a UTF-8 JSON document holding an ordered array of these records,
// conceptually one per derived image.
type ImageRecord struct {
	// SourceFormat labels the legacy format the derived image was produced
	// from. The format tally matches it by substring ("tif", "png", "jpg"),
	// because historic converters wrote values like "tiff" or "png24".
	SourceFormat string `json:"source_format"`

	// SourceDimensions is the pixel size of the legacy source image.
	SourceDimensions Dimensions `json:"source_dimensions"`

	// DerivedDimensions is the pixel size of the converted image. A lossless
	// structural conversion preserves dimensions exactly.
	DerivedDimensions Dimensions `json:"derived_dimensions"`
}
