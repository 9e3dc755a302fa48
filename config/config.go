package env

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"modarith-pkg/prime"
)

const (
	// envPrefix 環境変数のプレフィックス（例: MODARITH_WITNESS_COUNT）
	envPrefix = "MODARITH"
	// configName 設定ファイル名（modarith.yaml）
	configName = "modarith"

	// DefaultPrimeBits 素数ビット長の既定値
	DefaultPrimeBits = 16
)

// Config 素数生成まわりの設定
// 算術コア自体は設定を読まない。利用側アプリケーションの利便のための層。
type Config struct {
	// WitnessCount フェルマーテストの証人数
	WitnessCount int `mapstructure:"witness_count"`
	// PrimeBits 生成する素数のビット長
	PrimeBits int `mapstructure:"prime_bits"`
}

// Load 環境変数とYAMLファイルから設定を取得
// ファイルが見つからない場合は既定値と環境変数のみで構成する。
func Load(cfgDirPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("witness_count", prime.DefaultWitnessCount)
	v.SetDefault("prime_bits", DefaultPrimeBits)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfgDirPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Errorf("read cfg error: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Errorf("parse cfg error: %w", err)
	}
	return cfg, nil
}
