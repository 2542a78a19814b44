// Package pagination provides the opaque keyset tokens used when paging the
// conversion ledger.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// EncodeIDToken creates a base64 encoded token from the last seen record ID.
// The next page starts strictly below that ID.
func EncodeIDToken(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeIDToken parses a token produced by EncodeIDToken back into an ID.
func DecodeIDToken(token string) (int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	id, err := strconv.ParseInt(string(decodedBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return id, nil
}
