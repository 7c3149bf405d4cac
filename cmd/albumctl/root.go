package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumen-gallery/albums/internal/app"
	"github.com/lumen-gallery/albums/internal/config"
	"github.com/lumen-gallery/albums/pkg/ctxutil"
)

// tzFlag is a timezone flag validated against the IANA database.
type tzFlag struct {
	loc *time.Location
}

// String is used both by fmt.Print and by Cobra in help text.
func (f *tzFlag) String() string {
	if f.loc == nil {
		return ""
	}
	return f.loc.String()
}

// Set must have pointer receiver to validate and set the value.
func (f *tzFlag) Set(v string) error {
	loc, err := config.ParseTimezone(v)
	if err != nil {
		return err
	}
	f.loc = loc
	return nil
}

// Type is only used in help text.
func (f *tzFlag) Type() string {
	return "timezone"
}

// apply puts the zone on ctx when the flag was given.
func (f *tzFlag) apply(ctx context.Context) context.Context {
	if f.loc == nil {
		return ctx
	}
	return ctxutil.WithTimezone(ctx, f.loc)
}

type cli struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "albumctl",
		Short:         "Manage the album store",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "",
		"path to the YAML config (default: $CONFIG_PATH or ./albums.yaml)")

	root.AddCommand(
		newMigrateCmd(c),
		newCreateCmd(c),
		newExportCmd(c),
		newConvertTagCmd(c),
		newSetTakenCmd(c),
		newNormalizeCmd(c),
	)

	return root
}

func (c *cli) load() error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c.cfg = cfg
	c.log = app.NewLogger(cfg.Log)
	return nil
}

// withApp connects to the store, runs fn and closes the store. The context
// is cancelled on SIGINT and SIGTERM and carries a fresh request ID, so all
// log lines of one invocation can be correlated.
func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithRequestID(ctx, uuid.NewString())

	a, err := app.New(ctx, c.cfg, c.log)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
