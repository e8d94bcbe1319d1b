package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"student-dashboard/app/config"
	"student-dashboard/app/database"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/server"
	"student-dashboard/app/services"
	"student-dashboard/app/session"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Apply database migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if serveMigrate {
		if err := database.RunMigrations(ctx, db, log); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	rdb, err := config.InitRedis(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer rdb.Close()

	store := database.NewStore(db)
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	app := server.New(server.Deps{
		Auth: auth.NewHandler(store, sessions, auth.Options{
			Secret:        cfg.JWTSecret,
			SecureCookies: !cfg.IsDevelopment(),
		}, log),
		Dashboards: services.NewDashboardService(store, log, cfg.QueryTimeout),
		Log:        log,
		Checks: map[string]server.Check{
			"database": db.PingContext,
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
		TemplateReload: cfg.TemplateReload,
		AccessLog:      true,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
