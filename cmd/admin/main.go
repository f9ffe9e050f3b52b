// Command admin performs operator-only account maintenance. Deleting a user
// removes the user row and every transaction they own in one database
// transaction.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"github.com/AzmathBegum/finance-tracker/internal/config"
	"github.com/AzmathBegum/finance-tracker/internal/repository"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(stderr)

	deleteEmail := fs.String("delete-user", "", "Email of the user to delete (cascades to their transactions)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *deleteEmail == "" {
		fmt.Fprintln(stdout, "Usage: admin -delete-user <email>")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flag: delete-user")
	}

	cfg := config.Load()
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	user, err := users.GetUserByEmail(ctx, *deleteEmail)
	if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", *deleteEmail, err)
	}

	if err := users.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", *deleteEmail, err)
	}

	fmt.Fprintf(stdout, "User %s (id %d) and their transactions deleted\n", user.Email, user.ID)
	return nil
}
