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
	"github.com/Daskott/keepme/contacts"
	"github.com/Daskott/keepme/server"
	"github.com/spf13/cobra"
)

var serverPresetArg bool

func init() {
	rootCmd.AddCommand(createServerCmd())
}

func createServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start a keepme server",
		Long: `Serves the emergency contact list over a JSON HTTP API.
Contacts only live as long as the server does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			logg := newLogger(config)
			defer logg.Sync()

			directory := contacts.NewDirectory()
			if serverPresetArg {
				loaded := loadPresetContacts(cmd, directory, config.Contacts)
				logg.Infof("%v preset contact(s) loaded", loaded)
			}

			server.Start(config, directory, logg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&serverPresetArg, "preset", "p", false, "start with the contacts listed in config")

	return cmd
}
