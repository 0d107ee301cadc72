/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daskott/keepme/colors"
	"github.com/Daskott/keepme/contacts"
	devConfig "github.com/Daskott/keepme/dev/config"
	"github.com/Daskott/keepme/logger"
	"github.com/Daskott/keepme/shared"
	"github.com/Daskott/keepme/utils"
	"github.com/Daskott/keepme/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	isDevEnv bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "keepme",
		Short: `keepme keeps a short list of people to reach out to in an emergency.

Add contacts with their phone numbers, review the list, and send everyone
on it an emergency alert when something goes wrong.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keepme.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

// ---------------------------------------------------------------------------------//
// Config Helpers
// --------------------------------------------------------------------------------//

// loadConfig reads in the config file & ENV variables, then validates the result.
// The default config file is created on first use.
func loadConfig() (*shared.Config, error) {
	config := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir()
		if err != nil {
			return nil, err
		}

		configFilePath := filepath.Join(configDir, configName)
		_, err = utils.WriteFileIfNotExist(configFilePath, []byte(devConfig.DEFAULT_KEEPME_YML))
		if err != nil {
			return nil, errors.Wrap(err, "unable to create default config")
		}

		config.SetConfigFile(configFilePath)
		config.SetConfigType("yaml")
	}

	config.SetDefault("server.port", 3000)
	config.SetDefault("logging.level", "info")

	// e.g. KEEPME_SERVER_PORT overrides server.port
	config.SetEnvPrefix("KEEPME")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", config.ConfigFileUsed())
	}
	fmt.Fprintln(os.Stderr, "Using config file:", config.ConfigFileUsed())

	result := shared.Config{}
	if err := config.Unmarshal(&result); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	if err := shared.ValidateConfig(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func defaultCfgNameAndDir() (configName string, configDir string, err error) {
	configName = ".keepme.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if isDevEnv {
		configName = ".keepme.dev.yaml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}
	}

	return configName, configDir, err
}

func newLogger(config *shared.Config) *zap.SugaredLogger {
	return logger.NewLogger(config.Logging.Level, isDevEnv)
}

// loadPresetContacts adds every contact listed in config to directory.
// Entries that fail validation are reported on cmd's output & skipped.
func loadPresetContacts(cmd *cobra.Command, directory *contacts.Directory, presets []shared.PresetContact) int {
	loaded := 0
	for i, preset := range presets {
		_, err := directory.AddContact(strings.TrimSpace(preset.Name), preset.Phone)
		if err != nil {
			cmd.Printf("%s skipping preset contact #%d (%q): %v\n", colors.WarningLabel(), i+1, preset.Name, err)
			continue
		}
		loaded++
	}
	return loaded
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
