package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yeremiapane/restaurant-api/config"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/middlewares"
	"github.com/yeremiapane/restaurant-api/router"
	"github.com/yeremiapane/restaurant-api/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "restaurant-api",
	Short: "Restaurant billing API.",
	Long: `restaurant-api serves the billing API (customers, waiters, foods,
dining tables and bills) together with its sales reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		utils.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.InitDB(cfg)
		if err != nil {
			return err
		}
		return database.Migrate(db)
	},
}

var (
	tokenSubject string
	tokenRole    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the write API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := utils.GenerateToken([]byte(cfg.JWTSecret), tokenSubject, tokenRole, cfg.JWTTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject (user name)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", middlewares.RoleStaff, "token role (admin or staff)")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	hub := kds.NewHub()
	publishers := kds.Publishers{hub}

	var kafkaPublisher *kds.KafkaPublisher
	if cfg.KafkaBrokers != "" {
		kafkaPublisher = kds.NewKafkaPublisher(kds.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		publishers = append(publishers, kafkaPublisher)
		utils.InfoLogger.Infof("Publishing bill events to Kafka topic %s", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(db, router.Options{Config: cfg, Hub: hub, Publisher: publishers}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.InfoLogger.Infof("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		utils.InfoLogger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if kafkaPublisher != nil {
			err = errors.Join(err, kafkaPublisher.Close())
		}
		return errors.Join(err, closeDB(db))
	})

	return g.Wait()
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.ErrorLogger.Error(err)
		os.Exit(1)
	}
}
