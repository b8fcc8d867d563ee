package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/postergen/config"
	"github.com/ds124wfegd/postergen/internal/entity"
	"github.com/ds124wfegd/postergen/internal/pkg/loader"
	"github.com/ds124wfegd/postergen/internal/pkg/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type PosterProcessor interface {
	Generate(req entity.PosterRequest) error
}

type posterProcessor struct {
	cfg     *config.Config
	loader  loader.ImageLoader
	storage storage.FileStorage
	fonts   FontResolver
	log     *logrus.Logger
}

func NewPosterProcessor(cfg *config.Config, ld loader.ImageLoader, st storage.FileStorage, fonts FontResolver, log *logrus.Logger) PosterProcessor {
	return &posterProcessor{
		cfg:     cfg,
		loader:  ld,
		storage: st,
		fonts:   fonts,
		log:     log,
	}
}

// Generate собирает постер: два фото друг над другом, лента по центру,
// заголовок с обводкой, сохранение в JPEG
func (p *posterProcessor) Generate(req entity.PosterRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return entity.ErrEmptyTitle
	}

	bannerColor, err := parseHexColor(p.cfg.Banner.Color)
	if err != nil {
		return err
	}
	titleColor, err := parseHexColor(p.cfg.Font.TitleColor)
	if err != nil {
		return err
	}

	canvasWidth := p.cfg.Canvas.Width
	canvasHeight := p.cfg.Canvas.Height
	canvas := imaging.New(canvasWidth, canvasHeight, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	p.log.Info("Loading images...")
	img1, err := p.loader.Load(req.Image1)
	if err != nil {
		return fmt.Errorf("loading image1: %w", err)
	}
	img2, err := p.loader.Load(req.Image2)
	if err != nil {
		return fmt.Errorf("loading image2: %w", err)
	}

	// каждое фото занимает половину холста
	p.log.Info("Processing images...")
	halfHeight := canvasHeight / 2
	canvas = imaging.Paste(canvas, resizeAndCrop(img1, canvasWidth, halfHeight), image.Pt(0, 0))
	canvas = imaging.Paste(canvas, resizeAndCrop(img2, canvasWidth, halfHeight), image.Pt(0, halfHeight))

	p.log.Info("Creating banner...")
	bannerHeight := int(float64(canvasHeight) * p.cfg.Banner.HeightRatio)
	bannerY := (canvasHeight - bannerHeight) / 2
	banner := brushBanner(canvasWidth, bannerHeight, bannerColor, p.cfg.Banner.StampStep, p.cfg.Banner.BlurSigma)
	canvas = imaging.Overlay(canvas, banner, image.Pt(0, bannerY), 1.0)

	p.log.Info("Adding title text...")
	title := strings.ToUpper(req.Title)
	maxTextWidth := int(float64(canvasWidth) * p.cfg.Font.MaxWidthRatio)

	fit, face, err := p.layoutTitle(title, maxTextWidth)
	if err != nil {
		return fmt.Errorf("fitting title: %w", err)
	}
	defer face.Close()

	drawTitle(canvas, fit, face, titleStyle{
		canvasWidth:  canvasWidth,
		bannerY:      bannerY,
		bannerHeight: bannerHeight,
		lineSpacing:  p.cfg.Font.LineSpacing,
		strokeWidth:  p.cfg.Font.StrokeWidth,
		stroke:       bannerColor,
		fill:         titleColor,
	})

	p.log.Infof("Saving to %s...", req.Output)
	return p.encode(canvas, req.Output)
}

// layoutTitle подбирает размер шрифта под ширину ленты; без пригодного
// масштабируемого шрифта откатывается на встроенный растровый и не
// подбирает размер вовсе
func (p *posterProcessor) layoutTitle(title string, maxWidth int) (entity.TextFit, font.Face, error) {
	fallback := entity.TextFit{Size: p.cfg.Font.MinSize, Lines: []string{title}, Fallback: true}

	path, ok := p.fonts.Resolve(p.cfg.Font.Candidates)
	if !ok {
		p.log.Warn("no scalable font found, using built-in face")
		return fallback, basicfont.Face7x13, nil
	}

	data, err := p.readFont(path)
	if err != nil {
		p.log.Warnf("cannot read font %s: %v, using built-in face", path, err)
		return fallback, basicfont.Face7x13, nil
	}

	src, err := NewOpentypeSource(data)
	if err != nil {
		p.log.Warnf("cannot parse font %s: %v, using built-in face", path, err)
		return fallback, basicfont.Face7x13, nil
	}

	fit, err := fitText(src, title, maxWidth, p.cfg.Font.BaseSize, p.cfg.Font.MinSize, p.cfg.Font.SizeStep)
	if err != nil {
		return entity.TextFit{}, nil, err
	}

	face, err := src.Face(fit.Size)
	if err != nil {
		return entity.TextFit{}, nil, err
	}
	return fit, face, nil
}

func (p *posterProcessor) readFont(path string) ([]byte, error) {
	file, err := p.storage.Get(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// encode сериализует холст в JPEG и пишет через файловое хранилище
func (p *posterProcessor) encode(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.cfg.Output.JPEGQuality)); err != nil {
		return fmt.Errorf("encoding poster: %w", err)
	}
	if err := p.storage.Save(path, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
