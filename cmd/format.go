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
	"strings"

	"github.com/Daskott/keepme/contacts"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createFormatCmd())
}

func createFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <phone number>",
		Short: "Shows how a phone number will be saved",
		Long: `Strips everything but digits from the phone number (keeping at most 11)
and prints it the way it will be stored e.g. 01012345678 -> 010-1234-5678`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runFormat(cmd *cobra.Command, rawPhone string) error {
	preview, ok := contacts.PreviewPhoneNumber(rawPhone)
	cmd.Println(preview)

	if !ok {
		return formattedError("%q has %d digit(s), a phone number needs 10 or 11",
			rawPhone, len(contacts.NormalizeDigits(rawPhone)))
	}

	return nil
}
