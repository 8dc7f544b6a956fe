package errors

import "unicode"

// ValidateNodeID validates a manifest node identifier.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
//
// IDs double as cache-key components and diagram labels, so anything that
// could break a line-oriented text format is rejected here.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node ID contains control characters: %q", id)
		}
	}

	return nil
}

// ValidateGraphName validates a manifest's graph name.
// An empty name is allowed (the manifest filename stands in for it).
func ValidateGraphName(name string) error {
	if name == "" {
		return nil
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "graph name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains control characters")
		}
	}
	return nil
}

