package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeySource       = "source"
	cfgKeyDataDir      = "data_dir"
	cfgKeyBaseURL      = "base_url"
	cfgKeyDatasets     = "datasets"
	cfgKeyProductsFile = "products_file"
	cfgKeyOrder        = "order"
	cfgKeyFormat       = "format"

	defaultProductsFile = "products.json"
)

// defaultDatasets is the catalog used when config.yaml names none.
var defaultDatasets = []string{"kotara.json", "indira.json"}

// loadConfig reads config.yaml from configDir using Viper, layered over the
// built-in defaults. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeySource, types.SourceDir)
	v.SetDefault(cfgKeyDatasets, defaultDatasets)
	v.SetDefault(cfgKeyProductsFile, defaultProductsFile)
	v.SetDefault(cfgKeyOrder, string(types.OrderFirstSeen))
	v.SetDefault(cfgKeyFormat, types.FormatText)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		Source:       v.GetString(cfgKeySource),
		DataDir:      v.GetString(cfgKeyDataDir),
		BaseURL:      v.GetString(cfgKeyBaseURL),
		Datasets:     v.GetStringSlice(cfgKeyDatasets),
		ProductsFile: v.GetString(cfgKeyProductsFile),
		Order:        v.GetString(cfgKeyOrder),
		Format:       v.GetString(cfgKeyFormat),
	}
}
