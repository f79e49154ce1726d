// operator creates or updates a console operator account in the configured
// store. The password is read from --password or OPERATOR_PASSWORD.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/spf13/pflag"

	"github.com/report_admin/configs"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/pkg/db"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var input services.OperatorInput

	flagSet := pflag.NewFlagSet("operator", pflag.ContinueOnError)
	flagSet.StringVarP(&input.Username, "username", "u", "", "operator login name (required)")
	flagSet.StringVar(&input.DisplayName, "display-name", "", "name recorded as comment author")
	flagSet.StringVar(&input.Email, "email", "", "operator email address")
	flagSet.StringVar(&input.Role, "role", "admin", "operator role")
	flagSet.StringVar(&input.Password, "password", "", "password (defaults to $OPERATOR_PASSWORD)")
	flagSet.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: operator --username NAME [--display-name NAME] [--email ADDR] [--role ROLE]")
		fmt.Fprintln(os.Stderr)
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if input.Password == "" {
		input.Password = os.Getenv("OPERATOR_PASSWORD")
	}
	if input.Username == "" || input.Password == "" {
		flagSet.Usage()
		return errors.New("username and password are required")
	}

	configs.LoadConfig()
	cfg := configs.AppConfig

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := db.OpenStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer backend.Close(context.Background())

	operator, err := services.NewAuthService(backend.Store.Operators, cfg.JWTSecret).SaveOperator(ctx, input)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"id":       operator.ID,
		"username": operator.Username,
		"role":     operator.Role,
	}).Info("operator saved")
	return nil
}
