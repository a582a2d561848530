package cmd

import (
	"context"
	"errors"
	"fmt"
	"lol-watcher/internal/app"
	"lol-watcher/internal/cli"
	"lol-watcher/internal/config"
	"lol-watcher/internal/constants"
	fxmodules "lol-watcher/internal/fx"
	"lol-watcher/internal/logger"
	"lol-watcher/internal/service"
	"lol-watcher/internal/tui"
	"os"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"golang.org/x/term"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "watcher [name...] [region] [flags]",
		Short: "Look up League of Legends summoners from the terminal",
		Long: "watcher shows summoner profiles, ranked standings, champion mastery and\n" +
			"match history. Without arguments it opens an interactive view.",
		Args: cobra.ArbitraryArgs,
		// the original single-dash long flags (-mastery, -game) are not
		// POSIX style, so tokens are classified by internal/cli instead
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               run,
	}
	root.AddCommand(NewVersionCommand())
	return root
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		return runInteractive(ctx)
	}

	inv, err := cli.Parse(args)
	if err != nil {
		return fmt.Errorf("%w (see %s --help)", err, cmd.Root().Name())
	}
	if inv.Help {
		_, err := fmt.Fprint(cmd.OutOrStdout(), cli.Usage(cmd.Root().Name()))
		return err
	}

	var (
		svc *service.SummonerService
		log zerolog.Logger
	)
	stop, err := startApp(ctx, logger.ModeConsole, &svc, &log)
	if err != nil {
		return err
	}
	defer stop()

	return cli.NewDispatcher(svc, cmd.OutOrStdout(), log).Run(ctx, inv)
}

func runInteractive(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive mode needs a terminal; pass a summoner name for plain output")
	}

	var (
		svc *service.SummonerService
		cfg *config.Config
		log zerolog.Logger
	)
	stop, err := startApp(ctx, logger.ModeTerminalUI, &svc, &cfg, &log)
	if err != nil {
		return err
	}
	defer stop()

	mapper := tui.Mapper{
		Keys:      tui.DefaultKeyMap(),
		Clipboard: clipboard.ReadAll,
	}
	if cfg.HasQuickSearch() {
		mapper.QuickSearch = &app.Search{Region: cfg.DefaultRegion, Name: cfg.DefaultName}
	}

	log.Info().Str("region", cfg.DefaultRegion.Code()).Msg("starting interactive view")
	state := app.New(cfg.DefaultRegion)
	return tui.Run(ctx, tui.New(ctx, state, svc, mapper, log))
}

// startApp builds the dependency graph and fills targets. The returned stop
// func releases what the graph opened.
func startApp(ctx context.Context, mode logger.Mode, targets ...any) (func(), error) {
	fxApp := fx.New(
		fxmodules.Module,
		fx.Supply(logger.Options{Mode: mode}),
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := fxApp.Err(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			return nil, errors.New("missing API key: set RGAPI_KEY in the environment or in a .env file")
		}
		return nil, err
	}

	startCtx, cancel := context.WithTimeout(ctx, constants.StartTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return nil, fmt.Errorf("failed to start: %w", err)
	}

	return func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		_ = fxApp.Stop(stopCtx)
	}, nil
}
