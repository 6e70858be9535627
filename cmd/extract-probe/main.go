package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/vision"
)

// extract-probe runs a single vision extraction against a local image file
// and prints the parsed fields. No database, no storage; useful for trying
// out providers and prompt templates.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	templateFlag := flag.String("template", "general", "extraction template: general, travel or odometer")
	providerFlag := flag.String("provider", "", "provider override (defaults to VISION_PROVIDER)")
	flag.Parse()

	if flag.NArg() < 1 {
		logger.Error("usage: extract-probe [-template general|travel|odometer] [-provider name] <image-file>")
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	template, ok := constants.ParseTemplate(*templateFlag)
	if !ok {
		logger.Error("unknown template", "template", *templateFlag)
		os.Exit(2)
	}

	image, err := os.ReadFile(imagePath)
	if err != nil {
		logger.Error("read image", "path", imagePath, "error", err)
		os.Exit(1)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(imagePath))
	if !constants.IsAllowedImageType(mimeType) {
		logger.Error("unsupported image type", "path", imagePath, "mime_type", mimeType)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	registry := vision.NewRegistry(cfg.Vision, nil, logger)
	service := vision.NewService(registry, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	res, err := service.Extract(ctx, vision.Request{
		Image:    image,
		MimeType: mimeType,
		Template: template,
		Provider: *providerFlag,
	})
	if err != nil {
		logger.Error("extract failed", "error", err, "raw_text", res.RawText)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(res.Fields, "", "  ")
	logger.Info("extract.ok", "elapsed_ms", time.Since(start).Milliseconds())
	os.Stdout.Write(append(out, '\n'))
}
