package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dbm "github.com/cosmos/cosmos-db"

	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// EnvPrefix is the prefix of the environment variables overriding flags
	EnvPrefix = "FUNDSPLIT"

	// ConfigFileName is read from the home directory when present
	ConfigFileName = "config.toml"

	FlagHome         = "home"
	FlagDBBackend    = "db-backend"
	FlagDenom        = "denom"
	FlagBech32Prefix = "bech32-prefix"
	FlagLogLevel     = "log-level"
)

// Config holds the settings of the local ledger node.
type Config struct {
	Home         string `mapstructure:"home"`
	DBBackend    string `mapstructure:"db-backend"`
	Denom        string `mapstructure:"denom"`
	Bech32Prefix string `mapstructure:"bech32-prefix"`
	LogLevel     string `mapstructure:"log-level"`
}

// DefaultNodeHome is the default home directory of the node.
var DefaultNodeHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".fundsplitd"
	}
	return filepath.Join(userHome, ".fundsplitd")
}()

// DefaultConfig returns the default node configuration.
func DefaultConfig() Config {
	return Config{
		Home:         DefaultNodeHome,
		DBBackend:    string(dbm.GoLevelDBBackend),
		Denom:        types.DefaultDenom,
		Bech32Prefix: "sei",
		LogLevel:     zerolog.InfoLevel.String(),
	}
}

// Validate performs a stateless validation of the node configuration
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory cannot be empty")
	}
	if c.Bech32Prefix == "" {
		return fmt.Errorf("bech32 prefix cannot be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db backend %q", c.DBBackend)
	}
	return c.ModuleConfig().Validate()
}

// ModuleConfig returns the keeper configuration derived from c.
func (c Config) ModuleConfig() types.Config {
	return types.Config{Denom: c.Denom}
}

// AddConfigFlags registers the node configuration flags on cmd.
func AddConfigFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()
	cmd.PersistentFlags().String(FlagHome, defaults.Home, "directory for the ledger database and config.toml")
	cmd.PersistentFlags().String(FlagDBBackend, defaults.DBBackend, "database backend (goleveldb|memdb)")
	cmd.PersistentFlags().String(FlagDenom, defaults.Denom, "the only denomination accepted by the ledger")
	cmd.PersistentFlags().String(FlagBech32Prefix, defaults.Bech32Prefix, "bech32 prefix of account addresses")
	cmd.PersistentFlags().String(FlagLogLevel, defaults.LogLevel, "log level (trace|debug|info|warn|error)")
}

// ReadConfig resolves the configuration from flags, FUNDSPLIT_* environment
// variables and the optional config.toml in the home directory, in that
// order of precedence.
func ReadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	configPath := filepath.Join(v.GetString(FlagHome), ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	sdk.GetConfig().SetBech32PrefixForAccount(cfg.Bech32Prefix, cfg.Bech32Prefix+sdk.PrefixPublic)
	return cfg, nil
}
