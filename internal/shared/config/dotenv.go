package config

import (
	"os"

	"github.com/spf13/viper"
)

// loadEnvFiles merges KEY=VALUE files into v if they exist. Real environment
// variables still win because AutomaticEnv is consulted before config values.
func loadEnvFiles(v *viper.Viper, paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fileViper := viper.New()
		fileViper.SetConfigFile(path)
		fileViper.SetConfigType("env")
		if err := fileViper.ReadInConfig(); err != nil {
			continue
		}
		for _, key := range fileViper.AllKeys() {
			v.SetDefault(key, fileViper.Get(key))
		}
	}
}
