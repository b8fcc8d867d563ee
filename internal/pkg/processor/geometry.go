package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

// resizeAndCrop масштабирует изображение с сохранением пропорций так,
// чтобы оно полностью покрыло целевой слот, и обрезает излишки по центру.
// Результат всегда ровно targetWidth x targetHeight.
func resizeAndCrop(img image.Image, targetWidth, targetHeight int) *image.NRGBA {
	srcWidth := img.Bounds().Dx()
	srcHeight := img.Bounds().Dy()

	srcRatio := float64(srcWidth) / float64(srcHeight)
	targetRatio := float64(targetWidth) / float64(targetHeight)

	var newWidth, newHeight int
	if srcRatio > targetRatio {
		// исходник шире слота: подгоняем по высоте
		newHeight = targetHeight
		newWidth = int(float64(newHeight) * srcRatio)
		if newWidth < targetWidth {
			newWidth = targetWidth
		}
	} else {
		// исходник выше слота: подгоняем по ширине
		newWidth = targetWidth
		newHeight = int(float64(newWidth) / srcRatio)
		if newHeight < targetHeight {
			newHeight = targetHeight
		}
	}

	resized := imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)

	left := (newWidth - targetWidth) / 2
	top := (newHeight - targetHeight) / 2
	return imaging.Crop(resized, image.Rect(left, top, left+targetWidth, top+targetHeight))
}
