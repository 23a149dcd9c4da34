package cmd

import (
	"context"
	"fmt"
	"os"

	config "github.com/inference-gateway/keybinds/config"
	storage "github.com/inference-gateway/keybinds/internal/infra/storage"
	keybinds "github.com/inference-gateway/keybinds/internal/keybinds"
	logger "github.com/inference-gateway/keybinds/internal/logger"
	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"
)

// V holds the layered configuration for the current invocation
var V *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage game keybindings",
	Long: `Inspect and change the keys bound to game actions. Bindings are validated,
repaired when the stored copy is damaged, and persisted to the configured storage backend.`,
	SilenceUsage: true,
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")

	V = config.NewViper(configPath)
	logger.Init(verbose || V.GetBool("logging.debug"))
}

func getConfigFromViper() (*config.Config, error) {
	if V == nil {
		V = config.NewViper("")
	}
	return config.FromViper(V)
}

// openStore opens the configured backend and wraps it in a keybinding store.
// The returned close function releases the backend.
func openStore(cfg *config.Config) (*keybinds.Store, func(), error) {
	kv, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Type, err)
	}

	opts := []keybinds.StoreOption{keybinds.WithStorageKey(cfg.Keybindings.StorageKey)}
	if cfg.Keybindings.LegacyLabels {
		opts = append(opts, keybinds.WithLegacyLabels(keybinds.NewLegacyLabels()))
	}

	closeFn := func() {
		if err := kv.Close(); err != nil {
			logger.Warn("Failed to close storage", "type", cfg.Storage.Type, "error", err)
		}
	}
	return keybinds.NewStore(kv, opts...), closeFn, nil
}

// withStore loads the configuration, opens the store and runs fn against it
func withStore(cmd *cobra.Command, fn func(ctx context.Context, store *keybinds.Store) error) error {
	cfg, err := getConfigFromViper()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, closeFn, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, store)
}
