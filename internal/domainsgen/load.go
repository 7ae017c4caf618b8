package domainsgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrNotList is returned when the document is not a JSON array of strings.
	ErrNotList = errors.New("domain list must be a JSON array of strings")
	// ErrEmptyList is returned when the array holds no domains.
	ErrEmptyList = errors.New("domain list is empty")
	// ErrEmptyDomain is returned when an element is the empty string.
	ErrEmptyDomain = errors.New("domain list contains an empty domain")
)

// Load reads the domain list at path and returns it in file order.
// Any failure is reported as a KindInput *Error carrying path.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, inputError("read domain list", path, err)
	}
	domains, err := decodeList(data)
	if err != nil {
		return nil, inputError("parse domain list", path, err)
	}
	return domains, nil
}

func decodeList(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var domains []string
	if err := dec.Decode(&domains); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrNotList)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotList, err)
	}
	if domains == nil {
		return nil, fmt.Errorf("%w: document is null", ErrNotList)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the array", ErrNotList)
	}

	if len(domains) == 0 {
		return nil, ErrEmptyList
	}
	for i, d := range domains {
		if d == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyDomain, i)
		}
	}
	return domains, nil
}
