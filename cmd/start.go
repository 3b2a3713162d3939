package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asset-picker/core/loader"
	"asset-picker/core/logger"
	"asset-picker/core/middleware/auth"
	"asset-picker/core/middleware/rayid"
	"asset-picker/core/session"
	"asset-picker/feature/catalog"
	"asset-picker/feature/checkboxgroup"
	"asset-picker/feature/selectfield"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-picker/docs/swagger"
)

// @title Asset Picker API
// @version 1.0
// @description Selection components over an asset catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset picker server",
	Long:  `Starts the HTTP server, opens the catalog source and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	src, err := rt.openCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	// Sessions hold the components; idle ones are swept so their provider
	// subscriptions are released.
	sessions := session.NewStore(rt.cfg.UI.TTL(), logg)
	go sessions.Run(ctx, rt.cfg.UI.SweepInterval())

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(catalog.NewFeature(catalog.NewService(src, rt.cfg.UI.PageLimit, logg)))
	mgr.Register(checkboxgroup.NewFeature(checkboxgroup.NewService(sessions, src, rt.cfg.UI, logg)))
	mgr.Register(selectfield.NewFeature(selectfield.NewService(sessions, src, rt.cfg.UI, logg)))

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("address", rt.cfg.Server.Address()),
			zap.String("catalog", src.Kind()),
		)
		errCh <- app.Listen(rt.cfg.Server.Address())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
