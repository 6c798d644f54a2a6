package uid

import "github.com/google/uuid"

// GenerateTableID returns a random (version 4) UUID string
func GenerateTableID() string {
	return uuid.NewString()
}

// IsTableID reports whether s looks like an ID produced by GenerateTableID.
func IsTableID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}
