// Command tokengen issues a staff bearer token for local use.
package main

import (
	"flag"
	"fmt"
	"os"

	"workspace-booking/cmd/bootstrap"
	"workspace-booking/internal/domain/staff"
	"workspace-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	roleFlag := flag.String("role", string(staff.RoleOperator), "viewer, operator or admin")
	idFlag := flag.String("staff-id", "", "staff id (random when empty)")
	flag.Parse()

	if err := run(*roleFlag, *idFlag); err != nil {
		fmt.Fprintln(os.Stderr, "tokengen:", err)
		os.Exit(1)
	}
}

func run(roleName, id string) error {
	role, err := staff.NewRole(roleName)
	if err != nil {
		return err
	}

	staffID := uuid.New()
	if id != "" {
		if staffID, err = uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid staff id: %w", err)
		}
	}

	var cfg config.Config
	if err := envconfig.Process("", &cfg.JWT); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}

	token, err := bootstrap.NewJWTService(cfg).GenerateToken(staffID, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
