package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
	phoneRegex   = regexp.MustCompile(`^\+?[0-9][0-9 \-]{8,14}[0-9]$`)
)

func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPincode reports whether s is a 6-digit Indian postal code.
func IsPincode(s string) bool {
	return pincodeRegex.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

// ValidationError carries one message per offending input field.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// OrNil returns nil when no field failed, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, code, map[string]string{"error": message})
}
