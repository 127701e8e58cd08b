package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"q3-demo-checker/core/loader"
	"q3-demo-checker/core/logger"
	"q3-demo-checker/core/middleware/auth"
	"q3-demo-checker/core/middleware/rayid"
	"q3-demo-checker/feature/compat"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "q3-demo-checker/docs/swagger"
)

// @title Q3 Demo Checker API
// @version 1.0
// @description Checks whether Quake 3 Arena maps run on the demo client.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the check API server",
	Long: `Starts the HTTP server. Reference archives are loaded on the first check and
cached for CHECK_CACHE_TTL_SECONDS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration and logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Archive resolution (storage is optional)
		resolver, err := newResolver(cfg, cfg.Server.AllowLocal)
		if err != nil {
			return err
		}
		if resolver.Storage != nil {
			logg.Info("Object storage enabled", zap.String("endpoint", cfg.Storage.Endpoint), zap.String("bucket", cfg.Storage.Bucket))
		}
		svc := compat.NewService(resolver, cfg.Check, cfg.Storage, logg)

		// 3. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 4. Feature loader
		mgr := loader.NewManager()
		mgr.Register(compat.NewFeature(svc))

		// RayID first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Debug("Request finished",
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("elapsed", time.Since(start)),
			)
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 5. Start server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// 6. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
