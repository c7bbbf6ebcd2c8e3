// shopctl is the terminal storefront client. It keeps the signed-in
// session, cart and wishlist on disk between invocations and talks to
// the backend configured via BLOOMSHOP_API_URL.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"bloomshop/internal/clientstate"
	"bloomshop/internal/config"
	"bloomshop/internal/gateway"
	"bloomshop/internal/store"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Storefront client for the bloomshop backend",
	Long: `shopctl is the terminal storefront client.

Sign in once and your session, cart and wishlist follow you across
invocations. Every cart and wishlist mutation is confirmed against the
backend before it is shown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// openStore builds the client stack: sqlite state, HTTP gateway, store.
// The returned closer flushes the state file.
func openStore() (*store.Store, func(), error) {
	cfg := config.FromEnv()

	logWriter := io.Discard
	if verbose {
		logWriter = os.Stderr
	}
	logger := log.New(logWriter, "[shopctl] ", log.LstdFlags|log.LUTC)

	state, err := clientstate.OpenSQLite(cfg.StateDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open state dir %s: %w", cfg.StateDir, err)
	}

	gw := gateway.New(cfg.APIBaseURL, nil, logger)
	st, err := store.New(gw, state, logger)
	if err != nil {
		state.Close()
		return nil, nil, err
	}

	closer := func() {
		if err := state.Close(); err != nil {
			logger.Printf("close state: %v", err)
		}
	}
	return st, closer, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log HTTP activity to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
