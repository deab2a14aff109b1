// cmd/dashboard/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/haroldmz/stockdesk/internal/adapters/rest"
	"github.com/haroldmz/stockdesk/internal/core/services"
	"github.com/haroldmz/stockdesk/internal/pkg/config"
	"github.com/haroldmz/stockdesk/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.Setup("info", "text")

	slogger.Info("starting stockdesk dashboard",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("api_base_url", cfg.API.BaseURL),
	)

	deps, err := initializeDependencies(cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dash := newDashboard(cfg, deps, slogger)
	if err := dash.run(ctx, bufio.NewScanner(os.Stdin), os.Stdout); err != nil {
		slogger.Error("dashboard exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// dependencies is the explicitly wired object graph. Constructor injection
// only; there is no global service registry.
type dependencies struct {
	client    *rest.Client
	auth      *services.AuthService
	customers *services.CustomerService
	suppliers *services.SupplierService
	users     *services.UserService
}

func initializeDependencies(cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	client, err := rest.NewClient(rest.Config{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout,
		RateLimitRPS:    cfg.API.RateLimitRPS,
		RateLimitBurst:  cfg.API.RateLimitBurst,
		RequestIDHeader: cfg.API.RequestIDHeader,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build REST client: %w", err)
	}

	// A pre-provisioned token lets the dashboard start signed in.
	if cfg.API.TokenFile != "" {
		if raw, err := os.ReadFile(cfg.API.TokenFile); err != nil {
			slogger.Warn("could not read token file, starting signed out",
				slog.String("path", cfg.API.TokenFile),
				slog.String("error", err.Error()))
		} else if token := strings.TrimSpace(string(raw)); token != "" {
			client.SetToken(token)
		}
	}

	authRepo := rest.NewAuthRepository(client, slogger)
	auth := services.NewAuthService(authRepo, client, slogger)

	return &dependencies{
		client:    client,
		auth:      auth,
		customers: services.NewCustomerService(rest.NewCustomerRepository(client, slogger), auth, slogger),
		suppliers: services.NewSupplierService(rest.NewSupplierRepository(client, slogger), auth, slogger),
		users:     services.NewUserService(rest.NewUserRepository(client, slogger), auth, slogger),
	}, nil
}

func (d *dashboard) run(ctx context.Context, in *bufio.Scanner, out *os.File) error {
	fmt.Fprintln(out, "stockdesk — type 'help' for commands")
	d.render(out)

	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			d.deps.auth.Logout(ctx)
			return nil
		}
		d.dispatch(ctx, out, line)
	}
}
