// managedb is the operator tool for the user table: listing accounts and
// promoting a student to admin by scholar number.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/MayankSaini-Byte/Study-Edge/internal/config"
	"github.com/MayankSaini-Byte/Study-Edge/internal/db"
	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository"
)

type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

type userAdmin interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	SetUserRole(ctx context.Context, scholarNo string, role model.Role) (model.User, error)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
			printHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if err := config.LoadEnvFile(); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	cfg := config.Load()

	var databaseURL string
	flagSet := pflag.NewFlagSet("managedb", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&databaseURL, "database-url", cfg.DatabaseURL, "postgres connection string (default: DATABASE_URL)")
	flagSet.BoolP("help", "h", false, "show help")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout)
			return nil
		}
		return usageError{msg: err.Error()}
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout)
		return nil
	}
	if err := validateArgs(flagSet.Args()); err != nil {
		return err
	}

	logger := newLogger(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("db connection failed: %w", err)
	}
	defer pool.Close()

	return execute(ctx, repository.NewStore(db.NewStore(pool)), flagSet.Args(), stdout, logger)
}

// newLogger writes audit lines such as promotions to w at info level.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func validateArgs(args []string) error {
	if len(args) == 0 {
		return usageError{msg: "missing command"}
	}
	switch args[0] {
	case "list":
		if len(args) != 1 {
			return usageError{msg: "list takes no arguments"}
		}
	case "make_admin":
		if len(args) != 2 {
			return usageError{msg: "make_admin takes exactly one scholar number"}
		}
	default:
		return usageError{msg: fmt.Sprintf("unknown command %q", args[0])}
	}
	return nil
}

func execute(ctx context.Context, store userAdmin, args []string, stdout io.Writer, logger *slog.Logger) error {
	if err := validateArgs(args); err != nil {
		return err
	}
	switch args[0] {
	case "list":
		return listUsers(ctx, store, stdout)
	default:
		return makeAdmin(ctx, store, args[1], stdout, logger)
	}
}

func listUsers(ctx context.Context, store userAdmin, stdout io.Writer) error {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		fmt.Fprintln(stdout, "No users found.")
		return nil
	}
	writer := tabwriter.NewWriter(stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "ID\tName\tScholar No\tRole")
	for _, u := range users {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.ScholarNo, u.Role)
	}
	return writer.Flush()
}

func makeAdmin(ctx context.Context, store userAdmin, scholarNo string, stdout io.Writer, logger *slog.Logger) error {
	user, err := store.SetUserRole(ctx, scholarNo, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("no user with scholar number %q", scholarNo)
		}
		return fmt.Errorf("promote user: %w", err)
	}
	logger.Info("user promoted", "user_id", user.ID, "scholar_no", user.ScholarNo)
	fmt.Fprintf(stdout, "%s (%s) is now an admin.\n", user.Name, user.ScholarNo)
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `managedb inspects and administers StudyEdge accounts.

Usage:
  managedb [--database-url URL] list
  managedb [--database-url URL] make_admin <scholar_no>

Commands:
  list          print every user with their role
  make_admin    grant the admin role to the user with the scholar number

Flags:
  --database-url   postgres connection string (default: DATABASE_URL)
  -h, --help       show this help
`)
}
