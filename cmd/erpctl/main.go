package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "erpctl",
		Short: "Shop desk exchange rate and conversion tool",
		Long: `erpctl manages the default USD/SYP exchange rate and converts amounts
from the command line. The rate is kept in the SQLite settings store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			v.AutomaticEnv()
			level := slog.LevelWarn
			if v.GetBool("VERBOSE") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("sqlite-path", "data/settings.db", "path of the SQLite settings store")
	rootCmd.PersistentFlags().Bool("verbose", false, "log store activity")
	_ = v.BindPFlag("SQLITE_PATH", rootCmd.PersistentFlags().Lookup("sqlite-path"))
	_ = v.BindPFlag("VERBOSE", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(rateCmd(v))
	rootCmd.AddCommand(convertCmd(v))

	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
