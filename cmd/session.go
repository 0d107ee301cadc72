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
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Daskott/keepme/colors"
	"github.com/Daskott/keepme/contacts"
	"github.com/Daskott/keepme/dispatch"
	"github.com/spf13/cobra"
)

const sessionHelp = `Commands:
  add <name> <phone>   add a contact, the last word is the phone number
  list                 show all contacts
  delete <#n|id>       delete a contact by list position or id
  emergency            send an emergency alert to every contact
  preview <phone>      show how a phone number will be saved
  help                 show this message
  quit                 end the session (contacts are not kept)`

var presetArg bool

func init() {
	rootCmd.AddCommand(createSessionCmd())
}

func createSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Starts an interactive session for managing emergency contacts",
		Long: `Starts an interactive session where you can add, list & delete emergency contacts
and send them all an emergency alert. Contacts are kept in memory and are gone once the session ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd)
		},
	}

	cmd.Flags().BoolVarP(&presetArg, "preset", "p", false, "start with the contacts listed in config")

	return cmd
}

type session struct {
	cmd        *cobra.Command
	input      *bufio.Scanner
	directory  *contacts.Directory
	dispatcher dispatch.Dispatcher
}

func runSession(cmd *cobra.Command) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	logg := newLogger(config)
	defer logg.Sync()

	// cmd.Print* falls back to stderr when no output is set
	cmd.SetOut(cmd.OutOrStdout())

	s := &session{
		cmd:        cmd,
		input:      bufio.NewScanner(cmd.InOrStdin()),
		directory:  contacts.NewDirectory(),
		dispatcher: dispatch.NewLogDispatcher(logg),
	}

	if presetArg {
		loaded := loadPresetContacts(cmd, s.directory, config.Contacts)
		cmd.Printf("%v preset contact(s) loaded\n", loaded)
	}

	cmd.Println("KeepMe emergency contacts. Type 'help' to see what you can do.")
	s.run()

	return nil
}

func (s *session) run() {
	for {
		line, ok := s.prompt("> ")
		if !ok {
			return
		}

		command, rest := splitCommand(line)
		switch command {
		case "":
			continue
		case "add":
			s.add(rest)
		case "list", "ls":
			s.list()
		case "delete", "rm":
			s.delete(rest)
		case "emergency", "sos":
			s.emergency()
		case "preview":
			s.preview(rest)
		case "help":
			s.cmd.Println(sessionHelp)
		case "quit", "exit":
			return
		default:
			s.cmd.Printf("%s unknown command %q. Type 'help' to see what you can do.\n", colors.WarningLabel(), command)
		}
	}
}

func (s *session) add(args string) {
	name, phone := splitNameAndPhone(args)

	contact, err := s.directory.AddContact(name, phone)
	if err != nil {
		s.warn(err)
		return
	}

	s.cmd.Printf("%s %s was added to your contacts as %s\n", colors.OkLabel(), contact.Name, contact.Phone)
}

func (s *session) list() {
	list := s.directory.ListContacts()
	s.cmd.Printf("Emergency contacts (%d)\n", len(list))

	if len(list) == 0 {
		s.cmd.Println("  No contacts yet. Add someone to reach out to in an emergency!")
		return
	}

	for i, contact := range list {
		s.cmd.Printf("  #%d %s  %s  %s\n", i+1, contact.Name, contact.Phone, colors.Blue(contact.ID))
	}
}

func (s *session) delete(ref string) {
	id, err := s.resolveID(ref)
	if err != nil {
		s.warn(err)
		return
	}

	contact, err := s.directory.FindContact(id)
	if err != nil {
		s.warn(err)
		return
	}

	if !s.confirm(fmt.Sprintf("Delete %s (%s)?", contact.Name, contact.Phone)) {
		s.cmd.Println("Nothing was deleted")
		return
	}

	removed, err := s.directory.RemoveContact(id)
	if err != nil {
		s.warn(err)
		return
	}

	s.cmd.Printf("%s %s was deleted\n", colors.OkLabel(), removed.Name)
}

func (s *session) emergency() {
	summary, err := s.directory.BuildEmergencySummary()
	if err != nil {
		s.warn(err)
		return
	}

	s.cmd.Printf("%s an emergency alert will be sent to:\n\n%s\n\n", colors.AlertLabel(), summary)
	if !s.confirm("Send it now?") {
		s.cmd.Println("Emergency alert was not sent")
		return
	}

	err = s.dispatcher.Dispatch(context.Background(), summary)
	if err != nil {
		s.warn(err)
		return
	}

	s.cmd.Printf("%s emergency alert sent to %d contact(s)\n", colors.OkLabel(), s.directory.Len())
}

func (s *session) preview(rawPhone string) {
	phone, ok := contacts.PreviewPhoneNumber(rawPhone)
	if !ok {
		s.cmd.Printf("%s %q has %d digit(s), a phone number needs 10 or 11\n",
			colors.WarningLabel(), phone, len(contacts.NormalizeDigits(rawPhone)))
		return
	}

	s.cmd.Printf("Will be saved as: %s\n", phone)
}

// resolveID maps "#n" to the id of the nth listed contact. Anything else is taken as an id.
func (s *session) resolveID(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("which contact? e.g. 'delete #1'")
	}

	if !strings.HasPrefix(ref, "#") {
		return ref, nil
	}

	position, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	list := s.directory.ListContacts()
	if err != nil || position < 1 || position > len(list) {
		return "", contacts.ErrNotFound
	}

	return list[position-1].ID, nil
}

// confirm asks a yes/no question; only "y" or "yes" count as yes.
func (s *session) confirm(question string) bool {
	answer, ok := s.prompt(question + " [y/N]: ")
	if !ok {
		return false
	}

	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// prompt prints msg & reads the next line. It returns false once input is exhausted.
func (s *session) prompt(msg string) (string, bool) {
	s.cmd.Print(msg)
	if !s.input.Scan() {
		s.cmd.Println()
		return "", false
	}
	return strings.TrimSpace(s.input.Text()), true
}

func (s *session) warn(err error) {
	s.cmd.Printf("%s %v\n", colors.WarningLabel(), err)
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func splitCommand(line string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	command := strings.ToLower(fields[0])
	if len(fields) < 2 {
		return command, ""
	}
	return command, strings.TrimSpace(fields[1])
}

// splitNameAndPhone treats the last word as the phone number & the rest as the name.
func splitNameAndPhone(args string) (string, string) {
	words := strings.Fields(args)
	if len(words) == 0 {
		return "", ""
	}

	return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
}
