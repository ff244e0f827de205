// Package token builds the synthetic bearer token accepted by the reservation backend
// in development: base64 of "<restaurant id>.test". It carries no signature.
package token

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const suffix = ".test"

// Synthetic returns the bearer token for the given restaurant id.
func Synthetic(restaurantID int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(restaurantID, 10) + suffix))
}

// Parse reverses Synthetic and returns the restaurant id.
func Parse(tok string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("token: decode: %w", err)
	}
	idPart, ok := strings.CutSuffix(string(raw), suffix)
	if !ok {
		return 0, fmt.Errorf("token: missing %q suffix", suffix)
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token: parse id: %w", err)
	}
	return id, nil
}

// BearerHeader formats the Authorization header value.
func BearerHeader(tok string) string {
	return "Bearer " + tok
}
