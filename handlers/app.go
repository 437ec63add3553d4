package handlers

import (
	"strings"

	"kicker-league/middleware"
	"kicker-league/services"
	"kicker-league/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// AppConfig carries what NewApp needs to build the HTTP surface.
type AppConfig struct {
	Storage        *storage.Dispatcher
	Logger         *zap.Logger
	AllowedOrigins []string
	// AssetsDir, when set, enables "/" and /static.
	AssetsDir string
}

// NewApp builds the fiber application with middleware and every route.
func NewApp(cfg AppConfig) (*fiber.App, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "kicker-league",
		ErrorHandler:          middleware.ErrorHandler(log),
		UnescapePath:          true,
		StrictRouting:         false,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestContext(log))
	app.Use(recover.New())
	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(origins, ","),
			AllowMethods: "GET,POST,DELETE,OPTIONS,HEAD",
			AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
			MaxAge:       86400,
		}))
	}

	SetupPlayerRoutes(app, services.NewPlayerService(cfg.Storage))
	SetupTeamRoutes(app, services.NewTeamService(cfg.Storage))
	SetupTournamentRoutes(app, services.NewTournamentService(cfg.Storage))

	if cfg.AssetsDir != "" {
		if err := SetupAssetRoutes(app, cfg.AssetsDir); err != nil {
			return nil, err
		}
	}
	return app, nil
}
