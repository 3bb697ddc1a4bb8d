package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Source       string   `yaml:"source"`
	DataDir      string   `yaml:"data_dir,omitempty"`
	BaseURL      string   `yaml:"base_url,omitempty"`
	Datasets     []string `yaml:"datasets"`
	ProductsFile string   `yaml:"products_file"`
	Order        string   `yaml:"order"`
	Format       string   `yaml:"format"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Long: "Create the configuration directory, write config.yaml if it is missing, and create\n" +
			"the dataset directory when the dir source is selected. Running init again is harmless.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return systemErrorf("create config directory: %w", err)
	}

	configPath := filepath.Join(a.configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, a.configFile())
	if err != nil {
		return systemErrorf("write config: %w", err)
	}

	if a.cfg.Source == types.SourceDir {
		if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
			return systemErrorf("create data directory: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if created {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	} else {
		fmt.Fprintf(out, "Config already present at %s\n", configPath)
	}
	if a.cfg.Source == types.SourceDir {
		fmt.Fprintf(out, "Datasets are read from %s\n", a.cfg.DataDir)
	}
	return nil
}

// configFile captures the effective configuration. The data directory is
// written only when it was given explicitly, so the CWD default keeps
// following the working directory.
func (a *app) configFile() configFile {
	cf := configFile{
		Source:       a.cfg.Source,
		BaseURL:      a.cfg.BaseURL,
		Datasets:     a.cfg.Datasets,
		ProductsFile: a.cfg.ProductsFile,
		Order:        a.cfg.Order,
		Format:       a.cfg.Format,
	}
	if a.flags.dataDir != "" {
		cf.DataDir = a.cfg.DataDir
	}
	return cf
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
