package main

import (
	"fmt"
	"os"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/identity"
	"github.com/api-sage/swift-payment-portal/src/internal/bootstrap"
	"github.com/api-sage/swift-payment-portal/src/internal/cli"
	"github.com/api-sage/swift-payment-portal/src/internal/config"
)

func main() {
	rootCmd := cli.NewRootCommand(cli.Deps{
		LoadConfig: config.LoadStorage,
		Open:       bootstrap.OpenStorage,
		Passwords:  identity.NewBcryptVerifier(identity.DefaultCost),
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
