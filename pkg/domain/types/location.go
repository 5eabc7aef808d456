package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Location represents a location name as it appears in the dataset
type Location string

// String returns the string representation
func (l Location) String() string {
	return string(l)
}

// Validate checks if the location is non-empty
func (l Location) Validate() error {
	if strings.TrimSpace(string(l)) == "" {
		return goerr.New("location cannot be empty")
	}
	return nil
}

// ApplicationID represents a visa application identifier
type ApplicationID string

// String returns the string representation
func (id ApplicationID) String() string {
	return string(id)
}

// Normalize trims surrounding whitespace from the identifier
func (id ApplicationID) Normalize() ApplicationID {
	return ApplicationID(strings.TrimSpace(string(id)))
}

// Validate checks if the application ID is non-empty after trimming
func (id ApplicationID) Validate() error {
	if id.Normalize() == "" {
		return goerr.New("application ID cannot be empty")
	}
	return nil
}

// LookupID correlates a single status lookup across logs and responses
type LookupID string

// String returns the string representation
func (id LookupID) String() string {
	return string(id)
}

// NewLookupID creates a new LookupID
func NewLookupID() LookupID {
	return LookupID(uuid.New().String())
}
