package main

import (
	"github.com/ds124wfegd/postergen/config"
	"github.com/ds124wfegd/postergen/internal/entity"
	"github.com/ds124wfegd/postergen/internal/pkg/loader"
	"github.com/ds124wfegd/postergen/internal/pkg/processor"
	"github.com/ds124wfegd/postergen/internal/pkg/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	title := pflag.String("title", "", "Title text for the poster")
	image1 := pflag.String("image1", "", "Path or URL to first image (top half)")
	image2 := pflag.String("image2", "", "Path or URL to second image (bottom half)")
	output := pflag.String("output", "", "Output file path (default: pinterest_poster.jpg)")
	pflag.Parse()

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("failed to parse config: %v", err)
	}

	if *title == "" || *image1 == "" || *image2 == "" {
		pflag.Usage()
		logrus.Fatal("--title, --image1 and --image2 are required")
	}
	out := *output
	if out == "" {
		out = cfg.Output.DefaultPath
	}

	fileStorage := storage.NewFileStorage("")
	imgLoader := loader.NewImageLoader(cfg.HTTP.Timeout, fileStorage)
	fonts := processor.NewFontResolver(fileStorage)
	posterProcessor := processor.NewPosterProcessor(cfg, imgLoader, fileStorage, fonts, logrus.StandardLogger())

	req := entity.PosterRequest{
		Title:  *title,
		Image1: *image1,
		Image2: *image2,
		Output: out,
	}

	if err := posterProcessor.Generate(req); err != nil {
		logrus.Fatalf("poster generation failed: %v", err)
	}
	logrus.Infof("Poster generated successfully: %s", out)
}
