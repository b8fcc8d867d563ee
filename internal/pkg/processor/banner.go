package processor

import (
	"hash/fnv"
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
)

const (
	stampRadiusX = 10
	stampRadiusY = 5
	jagRange     = 15
)

// brushBanner рисует ленту с неровными "мазками" по верхнему и нижнему краю.
// Смещение каждого мазка — чистая функция позиции x, поэтому силуэт
// воспроизводится от запуска к запуску.
func brushBanner(width, height int, fill color.NRGBA, stampStep int, blurSigma float64) *image.NRGBA {
	banner := imaging.New(width, height, fill)

	for x := 0; x < width; x += stampStep {
		fillEllipse(banner, x, jagOffset("top", x), stampRadiusX, stampRadiusY, fill)
		fillEllipse(banner, x, height+jagOffset("bottom", x), stampRadiusX, stampRadiusY, fill)
	}

	// размываем, чтобы зубчатый край стал похож на мазок кистью
	return imaging.Blur(banner, blurSigma)
}

// jagOffset возвращает детерминированное смещение в диапазоне [-7, 7]
func jagOffset(edge string, x int) int {
	h := fnv.New32a()
	h.Write([]byte(edge + strconv.Itoa(x)))
	return int(h.Sum32()%jagRange) - jagRange/2
}

// fillEllipse закрашивает эллипс с центром (cx, cy) и полуосями rx, ry;
// точки за пределами изображения отбрасываются
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry int, c color.NRGBA) {
	b := img.Bounds()
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				x, y := cx+dx, cy+dy
				if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}
}
