package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"github.com/spf13/cobra"
)

func employeeCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Provision and manage staff accounts",
	}

	cmd.AddCommand(employeeCreateCmd(deps))
	cmd.AddCommand(employeeActiveCmd(deps, "activate", true))
	cmd.AddCommand(employeeActiveCmd(deps, "deactivate", false))
	cmd.AddCommand(employeeShowCmd(deps))

	return cmd
}

func employeeCreateCmd(deps Deps) *cobra.Command {
	var (
		req           models.CreateEmployeeRequest
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an active employee account",
		Example: `  portalctl employee create --employee-id EMP-001 --username jdoe --role verifier --password-stdin
  portalctl employee create --employee-id SUP-01 --username asmith --role supervisor --password S3curePass1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passwordStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				req.Password = strings.TrimRight(line, "\r\n")
			}
			if req.Password == "" {
				return errors.New("a password is required: use --password or --password-stdin")
			}

			storage, err := openStorage(cmd, deps)
			if err != nil {
				return err
			}
			defer storage.Close()

			svc := services.NewEmployeeService(storage.Employees, deps.Passwords)
			response, err := svc.CreateEmployee(cmd.Context(), req)
			return report(cmd, response, err)
		},
	}

	cmd.Flags().StringVar(&req.EmployeeID, "employee-id", "", "business-facing employee id")
	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Role, "role", "verifier", "verifier, supervisor or admin")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from the first line of stdin")
	_ = cmd.MarkFlagRequired("employee-id")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func employeeActiveCmd(deps Deps, use string, active bool) *cobra.Command {
	short := "Re-enable an employee account"
	if !active {
		short = "Disable an employee account; its tokens stop passing access checks"
	}

	return &cobra.Command{
		Use:   use + " [employee-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := openStorage(cmd, deps)
			if err != nil {
				return err
			}
			defer storage.Close()

			svc := services.NewEmployeeService(storage.Employees, deps.Passwords)
			response, err := svc.SetActive(cmd.Context(), args[0], active)
			return report(cmd, response, err)
		},
	}
}

func employeeShowCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show [employee-id]",
		Short: "Print an employee account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := openStorage(cmd, deps)
			if err != nil {
				return err
			}
			defer storage.Close()

			svc := services.NewEmployeeService(storage.Employees, deps.Passwords)
			response, err := svc.GetEmployee(cmd.Context(), args[0])
			return report(cmd, response, err)
		},
	}
}

// report prints the envelope and turns a failed one into the command error.
func report(cmd *cobra.Command, response commons.Response[models.EmployeeResponse], err error) error {
	if err != nil {
		if len(response.Errors) > 0 {
			return fmt.Errorf("%s: %s", response.Message, strings.Join(response.Errors, "; "))
		}
		return err
	}
	return printJSON(cmd.OutOrStdout(), response.Data)
}
