package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fileshare/config"
	logs "fileshare/internal/infra/log"
	"fileshare/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Supported subcommands:
// - migrate:    Apply database migrations
// - stats:      Show row counts and download totals
// - users:      List recent users
// - shares:     List recent file shares
// - purge-otps: Delete expired one-time codes

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	usersCmd := flag.NewFlagSet("users", flag.ExitOnError)
	sharesCmd := flag.NewFlagSet("shares", flag.ExitOnError)
	purgeCmd := flag.NewFlagSet("purge-otps", flag.ExitOnError)

	usersLimit := usersCmd.Int("limit", 10, "Maximum number of users to list")
	sharesLimit := sharesCmd.Int("limit", 10, "Maximum number of shares to list")

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Migrate: migrateCmd,
		Stats:   statsCmd,
		Users:   listFlags{cmd: usersCmd, limit: usersLimit},
		Shares:  listFlags{cmd: sharesCmd, limit: sharesLimit},
		Purge:   purgeCmd,
	}

	if err := runSubcommand(ctx, &flags, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate *flag.FlagSet
	Stats   *flag.FlagSet
	Users   listFlags
	Shares  listFlags
	Purge   *flag.FlagSet
}

type listFlags struct {
	cmd   *flag.FlagSet
	limit *int
}

func runSubcommand(ctx context.Context, flags *ctlFlags, args []string) error {
	var fs *flag.FlagSet
	switch args[0] {
	case "migrate":
		fs = flags.Migrate
	case "stats":
		fs = flags.Stats
	case "users":
		fs = flags.Users.cmd
	case "shares":
		fs = flags.Shares.cmd
	case "purge-otps":
		fs = flags.Purge
	default:
		printUsage(os.Stderr)

		return errors.Errorf("unknown subcommand %q", args[0])
	}
	if err := fs.Parse(args[1:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", args[0])
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	if args[0] == "migrate" {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Migrations applied")

		return nil
	}

	a := newPostgresAdmin(db, os.Stdout)
	switch args[0] {
	case "stats":
		return a.printStats(ctx)
	case "users":
		return a.listUsers(ctx, *flags.Users.limit)
	case "shares":
		return a.listShares(ctx, *flags.Shares.limit)
	default:
		return a.purgeOTPs(ctx)
	}
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", slog.Any("error", err))
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sharectl <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  migrate      Apply database migrations")
	fmt.Fprintln(w, "  stats        Show row counts and download totals")
	fmt.Fprintln(w, "  users        List recent users (-limit)")
	fmt.Fprintln(w, "  shares       List recent file shares (-limit)")
	fmt.Fprintln(w, "  purge-otps   Delete expired one-time codes")
}
