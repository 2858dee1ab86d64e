package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"sitesnap/config"
	"sitesnap/internal/app"
	deliverycontext "sitesnap/internal/delivery/context"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"
	logs "sitesnap/internal/infra/log"

	"github.com/google/uuid"
)

// Supported subcommands:
// - login, register, logout, whoami: session
// - seller, templates:               seller profile and storefront templates
// - categories, attributes:          taxonomy management
// - products:                        product management
// - analytics:                       dashboard summary
// - export, import, reset, clear:    data sync
// - storefront, qr:                  public storefront preview

type command struct {
	summary string
	run     func(ctx context.Context, a *app.App, args []string, out io.Writer) error
}

var commands = map[string]command{
	"login":      {"Log in and store the session token", runLogin},
	"register":   {"Create an account", runRegister},
	"logout":     {"Forget the session token", runLogout},
	"whoami":     {"Show the logged-in user", runWhoami},
	"seller":     {"Show or update the seller profile", runSeller},
	"templates":  {"List storefront templates or select some", runTemplates},
	"categories": {"Manage categories", runCategories},
	"attributes": {"Manage product attributes", runAttributes},
	"products":   {"Manage products", runProducts},
	"analytics":  {"Show the analytics dashboard or adjust its counters (offline only)", runAnalytics},
	"export":     {"Write all data as JSON", runExport},
	"import":     {"Load data from a JSON export", runImport},
	"reset":      {"Restore the bundled demo data (offline only)", runReset},
	"clear":      {"Delete all stored data (offline only)", runClear},
	"storefront": {"Preview the public storefront catalog", runStorefront},
	"qr":         {"Render the storefront QR code as PNG", runQR},
}

var commandOrder = []string{
	"login", "register", "logout", "whoami",
	"seller", "templates", "categories", "attributes", "products",
	"analytics", "export", "import", "reset", "clear",
	"storefront", "qr",
}

func main() {
	global := flag.NewFlagSet("sitesnap", flag.ExitOnError)
	offline := global.Bool("offline", false, "Use the on-device store instead of the backend")
	bucket := global.String("bucket", "", "Override the storage bucket URL (file:///dir or mem://)")
	global.Usage = func() { printUsage(global) }

	_ = global.Parse(os.Args[1:])
	if global.NArg() == 0 {
		printUsage(global)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, global.Arg(0), global.Args()[1:], *offline, *bucket); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string, offline bool, bucket string) error {
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if offline {
		cfg.Catalog.Source = config.SourceLocal
	}
	if bucket != "" {
		cfg.Storage.BucketURL = bucket
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("[CLI] Failed to close store", "error", err)
		}
	}()

	ctx = deliverycontext.Scoped(ctx, logger.With("command", name), uuid.NewString())

	return cmd.run(ctx, a, args, os.Stdout)
}

// describe prefers the user-facing message of domain errors.
func describe(err error) string {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		if details := appErr.Details(); details != "" {
			return appErr.Message() + " (" + details + ")"
		}

		return appErr.Message()
	}

	return err.Error()
}

func printUsage(global *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: sitesnap [-offline] [-bucket URL] <command> [flags]")
	fmt.Fprintln(os.Stderr, "\nCommands:")
	for _, name := range commandOrder {
		fmt.Fprintf(os.Stderr, "  %-11s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(os.Stderr, "\nGlobal flags:")
	global.PrintDefaults()
}

// printJSON writes v as indented JSON.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "failed to write output")
}

// newFlags creates a subcommand flag set that reports errors instead of exiting.
func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	return fs
}

// requireAction splits "products add -name x" into the action and its args.
func requireAction(name string, args []string, actions ...string) (string, []string, error) {
	if len(args) == 0 {
		return actions[0], nil, nil
	}

	for _, action := range actions {
		if args[0] == action {
			return action, args[1:], nil
		}
	}

	return "", nil, errors.Errorf("%s: unknown action %q (want one of %v)", name, args[0], actions)
}
