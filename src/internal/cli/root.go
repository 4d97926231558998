package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/api-sage/swift-payment-portal/src/internal/bootstrap"
	"github.com/api-sage/swift-payment-portal/src/internal/config"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/spf13/cobra"
)

var Version = "dev"

// Deps carries what the commands need from the outside world. Tests replace
// Open with a memory-backed opener.
type Deps struct {
	LoadConfig func() (config.Config, error)
	Open       func(ctx context.Context, cfg config.Config, migrate bool) (bootstrap.Storage, error)
	Passwords  domain.PasswordVerifier
}

func NewRootCommand(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operator tooling for the SWIFT payment portal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd(deps))
	rootCmd.AddCommand(employeeCmd(deps))

	return rootCmd
}

func openStorage(cmd *cobra.Command, deps Deps) (bootstrap.Storage, error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return bootstrap.Storage{}, err
	}
	return deps.Open(cmd.Context(), cfg, true)
}

func printJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
