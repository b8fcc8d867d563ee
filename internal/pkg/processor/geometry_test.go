package processor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResizeAndCropDimensions проверяет точные размеры слота для разных пропорций
func TestResizeAndCropDimensions(t *testing.T) {
	tests := []struct {
		name           string
		originalWidth  int
		originalHeight int
		targetWidth    int
		targetHeight   int
	}{
		{
			name:           "wide source fits to height",
			originalWidth:  2000,
			originalHeight: 500,
			targetWidth:    1000,
			targetHeight:   750,
		},
		{
			name:           "tall source fits to width",
			originalWidth:  500,
			originalHeight: 2000,
			targetWidth:    1000,
			targetHeight:   750,
		},
		{
			name:           "same ratio yields zero crop",
			originalWidth:  2000,
			originalHeight: 1500,
			targetWidth:    1000,
			targetHeight:   750,
		},
		{
			name:           "upscale small source",
			originalWidth:  100,
			originalHeight: 80,
			targetWidth:    1000,
			targetHeight:   750,
		},
		{
			name:           "square source into portrait slot",
			originalWidth:  600,
			originalHeight: 600,
			targetWidth:    500,
			targetHeight:   900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Создаем тестовое изображение
			original := image.NewRGBA(image.Rect(0, 0, tt.originalWidth, tt.originalHeight))
			fillImageWithColor(original, color.RGBA{R: 100, G: 150, B: 200, A: 255})

			result := resizeAndCrop(original, tt.targetWidth, tt.targetHeight)

			require.NotNil(t, result)
			assert.Equal(t, tt.targetWidth, result.Bounds().Dx())
			assert.Equal(t, tt.targetHeight, result.Bounds().Dy())
		})
	}
}

// TestResizeAndCropDeterministic проверяет, что повторный прогон дает
// попиксельно идентичный результат
func TestResizeAndCropDeterministic(t *testing.T) {
	original := image.NewRGBA(image.Rect(0, 0, 640, 480))
	// градиент, чтобы кроп было по чему сравнивать
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			original.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}

	first := resizeAndCrop(original, 300, 500)
	second := resizeAndCrop(original, 300, 500)

	require.Equal(t, first.Bounds(), second.Bounds())
	assert.Equal(t, first.Pix, second.Pix)
}

// fillImageWithColor заполняет изображение одним цветом
func fillImageWithColor(img *image.RGBA, color color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, color)
		}
	}
}
