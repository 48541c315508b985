/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prodcalc/tracker/config"
	"github.com/prodcalc/tracker/internal/db"
	"github.com/prodcalc/tracker/internal/services"
	"github.com/prodcalc/tracker/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// useraddCmd provisions accounts. The interactive session exposes no
// registration flow, so users are created here, out of band.
var useraddCmd = &cobra.Command{
	Use:   "useradd <username>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(args[0])
		if username == "" {
			return errors.New("username must not be empty")
		}

		fmt.Print("Password: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return errors.New("no password supplied")
		}
		password := strings.TrimSpace(scanner.Text())
		if password == "" {
			return errors.New("password must not be empty")
		}

		cfg := config.LoadConfig()
		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer dbConn.Close()

		authService := services.NewAuthService(store.NewUserRepository(dbConn), zap.NewNop())
		user, err := authService.Register(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Printf("Created user %q (id %d).\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useraddCmd)
}
