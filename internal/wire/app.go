package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/mithrel/mdview/internal/cleanup"
	"github.com/mithrel/mdview/internal/config"
	"github.com/mithrel/mdview/internal/display"
	"github.com/mithrel/mdview/internal/render"
	"github.com/mithrel/mdview/internal/store"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg     config.Config
	Log     *log.Logger
	Render  *render.Renderer
	Store   *store.Store
	Display *display.Dispatcher
	Cleanup *cleanup.Scheduler
}

// BuildApp wires dependencies from resolved configuration.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	cfg := config.FromViper(v)
	logger := log.New(os.Stderr, "mdview ", log.LstdFlags)
	win := display.WindowConfig{
		Title:  "Markdown Viewer",
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
	}
	return &App{
		Cfg:     cfg,
		Log:     logger,
		Render:  render.New(),
		Store:   store.New("", ""),
		Display: display.New(logger, cfg.BrowserCommand, win),
		Cleanup: cleanup.New(cfg.CleanupDelay, logger),
	}, nil
}
