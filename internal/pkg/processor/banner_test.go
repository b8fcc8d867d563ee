package processor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// TestBrushBannerDimensions проверяет размеры ленты
func TestBrushBannerDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "pinterest banner", width: 1000, height: 330},
		{name: "narrow banner", width: 200, height: 60},
		{name: "wide banner", width: 2000, height: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			banner := brushBanner(tt.width, tt.height, white, 20, 2.0)

			require.NotNil(t, banner)
			assert.Equal(t, tt.width, banner.Bounds().Dx())
			assert.Equal(t, tt.height, banner.Bounds().Dy())
		})
	}
}

// TestBrushBannerDeterministic проверяет воспроизводимость зубчатого края:
// два запуска с одинаковыми аргументами дают попиксельно одинаковую ленту
func TestBrushBannerDeterministic(t *testing.T) {
	first := brushBanner(1000, 330, white, 20, 2.0)
	second := brushBanner(1000, 330, white, 20, 2.0)

	require.Equal(t, first.Bounds(), second.Bounds())
	assert.Equal(t, first.Pix, second.Pix)
}

// TestJagOffsetRange проверяет диапазон смещений и независимость краев
func TestJagOffsetRange(t *testing.T) {
	differs := false
	for x := 0; x < 1000; x += 20 {
		top := jagOffset("top", x)
		bottom := jagOffset("bottom", x)

		assert.GreaterOrEqual(t, top, -7)
		assert.LessOrEqual(t, top, 7)
		assert.GreaterOrEqual(t, bottom, -7)
		assert.LessOrEqual(t, bottom, 7)

		if top != bottom {
			differs = true
		}
		// чистая функция позиции
		assert.Equal(t, top, jagOffset("top", x))
	}
	assert.True(t, differs, "верхний и нижний края не должны совпадать целиком")
}
