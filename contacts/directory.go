package contacts

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Directory is an ordered list of contacts, oldest first.
// It is not safe for concurrent use; callers that share one must serialize access.
type Directory struct {
	contacts []Contact
	newID    func() string
}

func NewDirectory() *Directory {
	return NewDirectoryWithIDSource(uuid.NewString)
}

// NewDirectoryWithIDSource creates an empty directory that takes contact ids from newID.
// newID must never return the same value twice.
func NewDirectoryWithIDSource(newID func() string) *Directory {
	return &Directory{newID: newID}
}

// AddContact validates name & rawPhone, then appends a new contact with the phone
// stored in its dashed form.
func (dir *Directory) AddContact(name, rawPhone string) (Contact, error) {
	if name == "" {
		return Contact{}, ErrEmptyName
	}

	digits := NormalizeDigits(rawPhone)
	if !validPhoneLength(digits) {
		return Contact{}, ErrInvalidPhoneLength
	}

	contact := Contact{
		ID:    dir.newID(),
		Name:  name,
		Phone: FormatPhoneNumber(digits),
	}
	dir.contacts = append(dir.contacts, contact)

	return contact, nil
}

// RemoveContact deletes the contact with the given id, keeping the order of the rest.
func (dir *Directory) RemoveContact(id string) (Contact, error) {
	index := dir.indexOf(id)
	if index < 0 {
		return Contact{}, ErrNotFound
	}

	removed := dir.contacts[index]

	remaining := make([]Contact, 0, len(dir.contacts)-1)
	remaining = append(remaining, dir.contacts[:index]...)
	dir.contacts = append(remaining, dir.contacts[index+1:]...)

	return removed, nil
}

func (dir *Directory) FindContact(id string) (Contact, error) {
	index := dir.indexOf(id)
	if index < 0 {
		return Contact{}, ErrNotFound
	}
	return dir.contacts[index], nil
}

// ListContacts returns a copy of all contacts in the order they were added.
func (dir *Directory) ListContacts() []Contact {
	result := make([]Contact, len(dir.contacts))
	copy(result, dir.contacts)
	return result
}

func (dir *Directory) Len() int {
	return len(dir.contacts)
}

// BuildEmergencySummary lists every contact as "name: phone", one per line.
func (dir *Directory) BuildEmergencySummary() (string, error) {
	if len(dir.contacts) == 0 {
		return "", ErrEmptyDirectory
	}

	lines := make([]string, 0, len(dir.contacts))
	for _, contact := range dir.contacts {
		lines = append(lines, fmt.Sprintf("%s: %s", contact.Name, contact.Phone))
	}

	return strings.Join(lines, "\n"), nil
}

func (dir *Directory) indexOf(id string) int {
	for i, contact := range dir.contacts {
		if contact.ID == id {
			return i
		}
	}
	return -1
}
