package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runSessionWithInput(t *testing.T, args []string, input ...string) (string, error) {
	sessionCmd := createSessionCmd()
	buff := new(bytes.Buffer)

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	sessionCmd.SetOut(buff)
	sessionCmd.SetErr(buff)
	sessionCmd.SetArgs(args)
	sessionCmd.SetIn(strings.NewReader(strings.Join(input, "\n") + "\n"))

	err := sessionCmd.Execute()
	return buff.String(), err
}

func TestSessionCmd(t *testing.T) {
	useConfigFixture(t, "config.yml")

	cases := []struct {
		description string
		args        []string
		input       []string
		expectedOut []string
		missingOut  []string
	}{
		{
			description: "Should add & list contacts in the order they were added",
			input:       []string{"add Jane Doe 01012345678", "add Tom 010-222-3333", "list", "quit"},
			expectedOut: []string{
				"Jane Doe was added to your contacts as 010-1234-5678",
				"Emergency contacts (2)",
				"#1 Jane Doe  010-1234-5678",
				"#2 Tom  010-222-3333",
			},
		},
		{
			description: "Should show empty state when there are no contacts",
			input:       []string{"list"},
			expectedOut: []string{"Emergency contacts (0)", "No contacts yet"},
		},
		{
			description: "Should NOT add contact without a name",
			input:       []string{"add 01012345678", "list"},
			expectedOut: []string{"Warning: name is required", "Emergency contacts (0)"},
		},
		{
			description: "Should NOT add contact with invalid phone",
			input:       []string{"add Jane 123", "list"},
			expectedOut: []string{"Warning: phone number must have 10 or 11 digits", "Emergency contacts (0)"},
		},
		{
			description: "Should NOT delete contact when confirmation is declined",
			input:       []string{"add Jane 01012345678", "delete #1", "n", "list"},
			expectedOut: []string{"Delete Jane (010-1234-5678)? [y/N]", "Nothing was deleted", "Emergency contacts (1)"},
		},
		{
			description: "Should delete contact when confirmed",
			input:       []string{"add Jane 01012345678", "add Tom 0102223333", "delete #1", "y", "list"},
			expectedOut: []string{"Jane was deleted", "Emergency contacts (1)", "#1 Tom  010-222-3333"},
		},
		{
			description: "Should warn when deleting a contact that does not exist",
			input:       []string{"add Jane 01012345678", "delete #5", "delete some-id", "list"},
			expectedOut: []string{"Warning: contact not found", "Emergency contacts (1)"},
			missingOut:  []string{"[y/N]"},
		},
		{
			description: "Should warn when sending an emergency alert with no contacts",
			input:       []string{"emergency"},
			expectedOut: []string{"Warning: no emergency contacts added yet"},
			missingOut:  []string{"Send it now?"},
		},
		{
			description: "Should send emergency alert to every contact when confirmed",
			input:       []string{"add Jane 01012345678", "add Tom 0102223333", "sos", "yes"},
			expectedOut: []string{
				"Jane: 010-1234-5678\nTom: 010-222-3333",
				"Send it now? [y/N]",
				"emergency alert sent to 2 contact(s)",
			},
		},
		{
			description: "Should NOT send emergency alert when not confirmed",
			input:       []string{"add Jane 01012345678", "emergency", ""},
			expectedOut: []string{"Emergency alert was not sent"},
			missingOut:  []string{"emergency alert sent"},
		},
		{
			description: "Should preview phone numbers",
			input:       []string{"preview 010 1234 5678", "preview 0101"},
			expectedOut: []string{"Will be saved as: 010-1234-5678", "has 4 digit(s), a phone number needs 10 or 11"},
		},
		{
			description: "Should warn on unknown commands",
			input:       []string{"call mom"},
			expectedOut: []string{"unknown command \"call\""},
		},
		{
			description: "Should stop reading input after quit",
			input:       []string{"quit", "add Jane 01012345678"},
			missingOut:  []string{"Jane was added"},
		},
		{
			description: "Should load valid preset contacts from config",
			args:        []string{"--preset"},
			input:       []string{"list"},
			expectedOut: []string{
				"skipping preset contact #3 (\"Nobody\"): phone number must have 10 or 11 digits",
				"2 preset contact(s) loaded",
				"#1 Mom  010-1234-5678",
				"#2 Dad  010-222-3333",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			out, err := runSessionWithInput(t, c.args, c.input...)
			assert.Nil(t, err)

			for _, expected := range c.expectedOut {
				assert.Contains(t, out, expected)
			}
			for _, missing := range c.missingOut {
				assert.NotContains(t, out, missing)
			}
		})
	}
}

func TestSessionCmdWithInvalidConfig(t *testing.T) {
	useConfigFixture(t, "invalid.yml")

	out, err := runSessionWithInput(t, nil, "list")
	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "invalid config")
	}
	assert.NotContains(t, out, "Emergency contacts")
}

func TestSplitNameAndPhone(t *testing.T) {
	name, phone := splitNameAndPhone("  Jane   Doe  010-1234-5678 ")
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "010-1234-5678", phone)

	name, phone = splitNameAndPhone("01012345678")
	assert.Equal(t, "", name)
	assert.Equal(t, "01012345678", phone)

	name, phone = splitNameAndPhone("")
	assert.Equal(t, "", name)
	assert.Equal(t, "", phone)
}
