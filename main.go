package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/adrg/xdg"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/gas-label-go/app"
	"github.com/soocke/gas-label-go/config"
)

func main() {
	// Config lives under the XDG config dir; missing file means defaults.
	cfgPath, err := xdg.ConfigFile("gas-label/config.json")
	if err != nil {
		cfgPath = "config.json"
	}
	cfg, cfgErr := config.Load(cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", cfgErr)
	}

	folder := ChooseDirectory(Title("Select folder containing images to label"))
	if folder == "" {
		logger.Info("no folder selected, exiting")
		return
	}

	application, err := app.NewApp("Gas Labeler", 1200, 800, folder, cfg, logger)
	if err != nil {
		if errors.Is(err, app.ErrNoFrames) {
			MessageBox(Title("No Images Found"), Icon("warning"),
				Msg("No supported images found in:\n"+folder+
					"\n\nSupported formats: .jpg, .jpeg, .png, .bmp, .webp"))
			logger.Info("no images found", "folder", folder)
			return
		}
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	if err := application.Start(); err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}
}
