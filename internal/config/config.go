package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common"
	platformconfig "github.com/essienricch/Nft-Creator-Haven/modules/platform/config"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkLiskSepolia,
		HTTPServer: HTTPServer{
			Port: 8080,
		},
		Platform: platformconfig.Config{
			ContentStore: platformconfig.ContentStore{
				Backend: platformconfig.ContentStoreBackendPinata,
			},
		},
	}
)

type Config struct {
	Logger     logger.Config         `mapstructure:"logger"`
	Network    common.Network        `mapstructure:"network"`
	HTTPServer HTTPServer            `mapstructure:"http_server"`
	Platform   platformconfig.Config `mapstructure:"platform"`
}

type HTTPServer struct {
	Port int `mapstructure:"port"`
}

// BindPFlag binds a command-line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Failed to bind flag to configuration", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse loads the configuration from the given file (or the default lookup
// paths), environment variables and bound flags. Subsequent calls return the
// already-parsed configuration.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *config
}

// Load returns the parsed configuration.
func Load() Config {
	return Parse("")
}
