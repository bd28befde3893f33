package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/server"
	"github.com/jonathan/talentbridge/internal/server/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a bearer token for local testing of the authenticated API",
	Long:  "Signs an HS256 token with auth.jwt_secret. Production tokens are issued by the marketplace backend.",
	RunE:  runToken,
}

var (
	tokenRole     string
	tokenUserID   string
	tokenClientID string
)

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", middleware.RoleRecruiter, "Role: admin, recruiter or client")
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User UUID (default: random)")
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID (required for the client role)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	jwtCfg, err := cfg.JWT()
	if err != nil {
		return err
	}

	p := middleware.Principal{Role: tokenRole, UserID: uuid.New()}
	switch tokenRole {
	case middleware.RoleAdmin, middleware.RoleRecruiter, middleware.RoleClient:
	default:
		return fmt.Errorf("unknown role %q", tokenRole)
	}

	if tokenUserID != "" {
		if p.UserID, err = uuid.Parse(tokenUserID); err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
	}
	if tokenClientID != "" {
		if p.ClientID, err = uuid.Parse(tokenClientID); err != nil {
			return fmt.Errorf("invalid --client-id: %w", err)
		}
	}
	if tokenRole == middleware.RoleClient && p.ClientID == uuid.Nil {
		return fmt.Errorf("--client-id is required for the client role")
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(p)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, token)
	return nil
}
