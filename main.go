package main

import (
	"fmt"
	"os"

	"pharmacy-pos-backend/config"
	"pharmacy-pos-backend/database"
	"pharmacy-pos-backend/routes"
	"pharmacy-pos-backend/server"
	"pharmacy-pos-backend/utils"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// @title Pharmacy POS API
// @version 1.0
// @description Stores, sales, payments and login auditing for pharmacy point of sale.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pharmacy-pos",
	Short: "Pharmacy point of sale REST API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file
		if err := godotenv.Load(); err != nil {
			log.Debug(".env file not found, using environment variables")
		}

		if logLevel == "" {
			logLevel = os.Getenv("LOG_LEVEL")
		}
		if logLevel == "" {
			logLevel = "info"
		}
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			log.WithError(err).Fatal("cannot parse log-level")
		}
		log.SetLevel(level)
		log.Debug("debug logging enabled")
	},
}

// openDatabase connects and migrates the schema for cfg
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		return nil, errors.WithMessage(err, "could not connect to db")
	}
	if err := database.MigrateDatabase(db); err != nil {
		return nil, errors.WithMessage(err, "could not migrate db")
	}
	return db, nil
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			if err := database.SeedInitialAdmin(db, cfg); err != nil {
				return errors.WithMessage(err, "could not seed admin user")
			}

			tokens, err := utils.NewTokenService(cfg)
			if err != nil {
				return errors.WithMessage(err, "could not create token service")
			}

			app := server.New(cfg, db, tokens)

			log.WithFields(log.Fields{
				"port":         cfg.Port,
				"env":          cfg.Env,
				"db_driver":    cfg.DbDriver,
				"token_format": cfg.TokenFormat,
			}).Info("server ready")
			log.Infof("health check: %s/api/health", cfg.AppUrl)
			log.Infof("API documentation: %s/docs", cfg.AppUrl)

			return app.Listen(":" + cfg.Port)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate or initialize the database to the latest schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			if err := database.SeedInitialAdmin(db, cfg); err != nil {
				return errors.WithMessage(err, "could not seed admin user")
			}

			log.Info("database migrated")
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the API version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "pharmacy-pos %s\n", routes.Version)
		},
	}
}

func main() {
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = "2006-01-02T15:04:05.999Z07:00"
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)

	serveCmd := newServeCommand()
	// Running without a subcommand serves the API
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(
		serveCmd,
		newMigrateCommand(),
		newVersionCommand(),
	)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (trace,debug,info,warn,error), defaults to LOG_LEVEL or info")

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("could not execute root command")
	}
}
