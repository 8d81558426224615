package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfsink/clog"
)

const (
	KeyFormat      = "convert.format"
	KeyInputFormat = "convert.input_format"
	KeyBase        = "convert.base"

	KeyHost    = "http.host"
	KeyTimeout = "http.timeout"
	KeyMaxBody = "http.max_body"
)

const envPrefix = "RDFSINK"

// initConfig reads the configuration file, if any, and the environment.
// An explicit file must exist; the default locations are optional.
func initConfig(file string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("rdfsink")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".rdfsink"))
		}
	}
	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
		return nil
	} else if err != nil {
		return err
	}
	clog.Infof("using config file: %s", viper.ConfigFileUsed())
	return nil
}
