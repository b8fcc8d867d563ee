package processor

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/ds124wfegd/postergen/internal/entity"
	"github.com/ds124wfegd/postergen/internal/pkg/storage"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontResolver выбирает первый существующий шрифт из упорядоченного списка.
// Возвращает ok=false, если ни один кандидат не найден — вызывающий код
// обязан откатиться на встроенный растровый шрифт.
type FontResolver interface {
	Resolve(candidates []string) (string, bool)
}

type fsFontResolver struct {
	storage storage.FileStorage
}

func NewFontResolver(st storage.FileStorage) FontResolver {
	return &fsFontResolver{storage: st}
}

func (r *fsFontResolver) Resolve(candidates []string) (string, bool) {
	for _, path := range candidates {
		if r.storage.Exists(path) {
			return path, true
		}
	}
	return "", false
}

// FaceSource выдает начертание шрифта заданного размера
type FaceSource interface {
	Face(size int) (font.Face, error)
}

type opentypeSource struct {
	font *sfnt.Font
}

func NewOpentypeSource(data []byte) (FaceSource, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &opentypeSource{font: f}, nil
}

func (s *opentypeSource) Face(size int) (font.Face, error) {
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// fitText подбирает наибольший размер шрифта (от baseSize вниз с шагом step)
// и разбивку текста, при которых ширина строки не превышает maxWidth.
// Порядок на каждом размере: сначала одна строка, затем две строки с разрывом
// по середине списка слов, и только потом уменьшение размера.
// Если не влезает даже minSize — возвращаем minSize одной строкой,
// переполнение допустимо.
func fitText(src FaceSource, text string, maxWidth, baseSize, minSize, step int) (entity.TextFit, error) {
	for size := baseSize; size >= minSize; size -= step {
		face, err := src.Face(size)
		if err != nil {
			return entity.TextFit{}, err
		}

		if font.MeasureString(face, text).Ceil() <= maxWidth {
			face.Close()
			return entity.TextFit{Size: size, Lines: []string{text}}, nil
		}

		words := strings.Fields(text)
		if len(words) > 1 {
			mid := len(words) / 2
			line1 := strings.Join(words[:mid], " ")
			line2 := strings.Join(words[mid:], " ")

			w1 := font.MeasureString(face, line1).Ceil()
			w2 := font.MeasureString(face, line2).Ceil()
			if w1 <= maxWidth && w2 <= maxWidth {
				face.Close()
				return entity.TextFit{Size: size, Lines: []string{line1, line2}}, nil
			}
		}

		face.Close()
	}

	return entity.TextFit{Size: minSize, Lines: []string{text}}, nil
}

// titleStyle — геометрия и цвета отрисовки заголовка внутри ленты
type titleStyle struct {
	canvasWidth  int
	bannerY      int
	bannerHeight int
	lineSpacing  int
	strokeWidth  int
	stroke       color.NRGBA
	fill         color.NRGBA
}

// drawTitle рисует строки заголовка с обводкой, центрируя каждую строку
// по горизонтали и весь блок по вертикали ленты
func drawTitle(dst draw.Image, fit entity.TextFit, face font.Face, style titleStyle) {
	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	total := lineHeight*len(fit.Lines) + style.lineSpacing*(len(fit.Lines)-1)
	y := style.bannerY + (style.bannerHeight-total)/2

	for _, line := range fit.Lines {
		lineWidth := font.MeasureString(face, line).Ceil()
		x := (style.canvasWidth - lineWidth) / 2
		baseline := y + metrics.Ascent.Ceil()

		// обводка: штампуем текст во всех целых точках круга радиуса strokeWidth
		for dy := -style.strokeWidth; dy <= style.strokeWidth; dy++ {
			for dx := -style.strokeWidth; dx <= style.strokeWidth; dx++ {
				if dx*dx+dy*dy <= style.strokeWidth*style.strokeWidth {
					drawString(dst, face, line, x+dx, baseline+dy, style.stroke)
				}
			}
		}
		drawString(dst, face, line, x, baseline, style.fill)

		y += lineHeight + style.lineSpacing
	}
}

func drawString(dst draw.Image, face font.Face, s string, x, y int, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
