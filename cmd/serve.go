package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/usmank-dev/neonfolio/internal/assistant"
	"github.com/usmank-dev/neonfolio/internal/authgate"
	"github.com/usmank-dev/neonfolio/internal/config"
	"github.com/usmank-dev/neonfolio/internal/inbox"
	"github.com/usmank-dev/neonfolio/internal/portfolio"
	"github.com/usmank-dev/neonfolio/internal/profile"
	"github.com/usmank-dev/neonfolio/internal/server"
	"github.com/usmank-dev/neonfolio/internal/site"
	"github.com/usmank-dev/neonfolio/internal/telemetry"
	"github.com/usmank-dev/neonfolio/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio server",
	Long:  `Starts the neonfolio HTTP server: the public portfolio page, the admin command center, the JSON API and the assistant chat proxy. All content lives in memory and resets on restart.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured listen port")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Provider API keys are commonly kept in a local .env file.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	projects := portfolio.NewStore()
	messages := inbox.NewStore()
	profiles := profile.NewStore(profile.Owner{
		User:   cfg.Owner.Name,
		Role:   cfg.Owner.Role,
		Avatar: cfg.Owner.Avatar,
	})
	state := ui.NewState()

	gate := authgate.New(cfg.AccessKey, authgate.DefaultDelays())
	defer gate.Close()

	provider, err := assistant.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return fmt.Errorf("creating assistant provider: %w", err)
	}
	bridge := assistant.NewBridge(provider, profiles, cfg.Greeting, cfg.Temperature)

	gauge := telemetry.NewGauge(func() int {
		return len(projects.Projects())
	})

	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")
	srv := server.New(server.Config{Port: cfg.Port, AllowAll: allowAll})

	r := srv.Router()
	portfolio.RegisterRoutes(r, projects)
	inbox.RegisterRoutes(r, messages)
	profile.RegisterRoutes(r, profiles)
	authgate.RegisterRoutes(r, gate, func() {
		state.SetActiveTab(ui.TabProjects)
	})
	assistant.RegisterRoutes(r, bridge)
	telemetry.RegisterRoutes(r, gauge, telemetry.DefaultInterval)
	ui.RegisterRoutes(r, state)

	pages, err := site.New(projects, profiles, messages, gate, state)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	pages.RegisterRoutes(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
