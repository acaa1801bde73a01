package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress    string
	DatabaseURI   string
	RedisAddress  string
	AuthSecret    string
	SnapshotDir   string
	AdminLogin    string
	AdminPassword string

	VendorPollInterval   time.Duration
	AdminPollInterval    time.Duration
	CustomerPollInterval time.Duration
	PendingGrace         time.Duration
	IncrementalBatchSize int
	FullWindowSize       int
	DismissalWindow      time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultRedisAddress         = "localhost:6379"
	defaultAuthSecret           = "change-me-in-production"
	defaultSnapshotDir          = "snapshots"
	defaultVendorPollInterval   = 3 * time.Second
	defaultAdminPollInterval    = 10 * time.Second
	defaultCustomerPollInterval = 30 * time.Second
	defaultPendingGrace         = 3 * time.Second
	defaultIncrementalBatch     = 50
	defaultFullWindow           = 200
	defaultDismissalWindow      = 10 * time.Minute
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		RedisAddress:         getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		AuthSecret:           getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		SnapshotDir:          getString(lookup, "SNAPSHOT_DIR", defaultSnapshotDir),
		AdminLogin:           getString(lookup, "ADMIN_LOGIN", ""),
		AdminPassword:        getString(lookup, "ADMIN_PASSWORD", ""),
		VendorPollInterval:   getDuration(lookup, "VENDOR_POLL_INTERVAL", defaultVendorPollInterval),
		AdminPollInterval:    getDuration(lookup, "ADMIN_POLL_INTERVAL", defaultAdminPollInterval),
		CustomerPollInterval: getDuration(lookup, "CUSTOMER_POLL_INTERVAL", defaultCustomerPollInterval),
		PendingGrace:         getDuration(lookup, "PENDING_GRACE", defaultPendingGrace),
		IncrementalBatchSize: getInt(lookup, "INCREMENTAL_BATCH_SIZE", defaultIncrementalBatch),
		FullWindowSize:       getInt(lookup, "FULL_WINDOW_SIZE", defaultFullWindow),
		DismissalWindow:      getDuration(lookup, "DISMISSAL_WINDOW", defaultDismissalWindow),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("quickserve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		vendorPollStr      = cfg.VendorPollInterval.String()
		adminPollStr       = cfg.AdminPollInterval.String()
		customerPollStr    = cfg.CustomerPollInterval.String()
		pendingGraceStr    = cfg.PendingGrace.String()
		dismissalWindowStr = cfg.DismissalWindow.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for order feed and hub counters")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.SnapshotDir, "snapshot-dir", cfg.SnapshotDir, "Directory for local cache snapshots")
	fs.StringVar(&vendorPollStr, "vendor-poll", vendorPollStr, "Vendor incremental poll interval")
	fs.StringVar(&adminPollStr, "admin-poll", adminPollStr, "Admin full-window poll interval")
	fs.StringVar(&customerPollStr, "customer-poll", customerPollStr, "Customer storefront poll interval")
	fs.StringVar(&pendingGraceStr, "pending-grace", pendingGraceStr, "Pending mutation grace period")
	fs.IntVar(&cfg.IncrementalBatchSize, "incremental-batch", cfg.IncrementalBatchSize, "Maximum orders per incremental pull")
	fs.IntVar(&cfg.FullWindowSize, "full-window", cfg.FullWindowSize, "Orders per full-window pull")
	fs.StringVar(&dismissalWindowStr, "dismissal-window", dismissalWindowStr, "How long terminal orders stay in active views")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	durations := []struct {
		dst  *time.Duration
		src  string
		name string
	}{
		{&cfg.VendorPollInterval, vendorPollStr, "vendor poll interval"},
		{&cfg.AdminPollInterval, adminPollStr, "admin poll interval"},
		{&cfg.CustomerPollInterval, customerPollStr, "customer poll interval"},
		{&cfg.PendingGrace, pendingGraceStr, "pending grace"},
		{&cfg.DismissalWindow, dismissalWindowStr, "dismissal window"},
		{&cfg.ShutdownTimeout, shutdownTimeoutStr, "shutdown timeout"},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(d.src)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.VendorPollInterval <= 0 {
		cfg.VendorPollInterval = defaultVendorPollInterval
	}
	if cfg.AdminPollInterval <= 0 {
		cfg.AdminPollInterval = defaultAdminPollInterval
	}
	if cfg.CustomerPollInterval <= 0 {
		cfg.CustomerPollInterval = defaultCustomerPollInterval
	}
	if cfg.PendingGrace <= 0 {
		cfg.PendingGrace = defaultPendingGrace
	}
	if cfg.IncrementalBatchSize <= 0 {
		cfg.IncrementalBatchSize = defaultIncrementalBatch
	}
	if cfg.FullWindowSize <= 0 {
		cfg.FullWindowSize = defaultFullWindow
	}
	if cfg.DismissalWindow <= 0 {
		cfg.DismissalWindow = defaultDismissalWindow
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
