/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/prodcalc/tracker/config"
	"github.com/prodcalc/tracker/internal/cli"
	"github.com/prodcalc/tracker/internal/db"
	"github.com/prodcalc/tracker/internal/services"
	"github.com/prodcalc/tracker/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive tracker session",
	Long: `Start the interactive tracker session. Usage:

	tracker run
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB error: %v\n", err)
			fmt.Println("Exiting.")
			os.Exit(1)
		}
		defer dbConn.Close()

		userRepo := store.NewUserRepository(dbConn)
		taskRepo := store.NewTaskRepository(dbConn)

		authService := services.NewAuthService(userRepo, logger)
		taskService := services.NewTaskService(taskRepo, logger)

		session := cli.NewSession(authService, taskService, os.Stdin, os.Stdout, os.Stderr, logger)
		if err := session.Run(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "session error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// newLogger builds a production logger on stderr so log lines never
// interleave with menu output on stdout.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
