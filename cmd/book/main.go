package main

import (
	"context"
	"errors"
	"io/fs"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/book-service/book/app"
	"github.com/Astemirdum/book-service/book/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @title Book Service API
// @version 1.0
// @description Book catalogue with per-user reservations.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}

	root := &cobra.Command{
		Use:          "book",
		Short:        "Book catalogue and reservation service",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewConfig(
				config.WithWriteTimeout(time.Minute),
				config.WithReadTimeout(time.Minute),
			)
			return app.Run(cmd.Context(), cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.Migrate(config.NewConfig())
		},
	}
}
