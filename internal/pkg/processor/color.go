package processor

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ds124wfegd/postergen/internal/entity"
)

// parseHexColor разбирает непрозрачный цвет вида #RRGGBB
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q", entity.ErrInvalidInput, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q", entity.ErrInvalidInput, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
