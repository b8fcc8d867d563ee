package loader

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/postergen/internal/entity"
	"github.com/ds124wfegd/postergen/internal/pkg/storage"
)

type ImageLoader interface {
	Load(source string) (image.Image, error)
}

type imageLoader struct {
	client  *http.Client
	storage storage.FileStorage
}

func NewImageLoader(timeout time.Duration, st storage.FileStorage) ImageLoader {
	return &imageLoader{
		client:  &http.Client{Timeout: timeout},
		storage: st,
	}
}

// Load загружает изображение по URL или локальному пути
func (l *imageLoader) Load(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetch(source)
	}
	return l.open(source)
}

func (l *imageLoader) fetch(url string) (image.Image, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetching %s: %w: %s", url, entity.ErrBadStatus, resp.Status)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %v", url, entity.ErrUndecodable, err)
	}
	return flatten(img), nil
}

func (l *imageLoader) open(path string) (image.Image, error) {
	file, err := l.storage.Get(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, entity.ErrSourceMissing, err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %v", path, entity.ErrUndecodable, err)
	}
	return flatten(img), nil
}

// flatten приводит изображение к непрозрачному RGB поверх белого фона
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
