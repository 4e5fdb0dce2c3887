package creators

import (
	"encoding/json"
	"fmt"
	"slices"
)

func appendID(ids []string, id string) []string {
	return append(slices.Clone(ids), id)
}

// removeID splices out the first occurrence of id.
func removeID(ids []string, id string) ([]string, bool) {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids, false
	}
	return slices.Delete(slices.Clone(ids), i, i+1), true
}

func encodeIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode document ids: %w", err)
	}
	return b, nil
}

func decodeIDs(b []byte) ([]string, error) {
	ids := []string{}
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, fmt.Errorf("decode document ids: %w", err)
	}
	return ids, nil
}
