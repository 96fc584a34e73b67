package sync

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes key/token pairs independent of their order.
// Tokens hold the mutable fields of a record.
func Fingerprint(tokens map[string]string) uint64 {
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	d := xxhash.New()
	for _, k := range keys {
		_, _ = d.WriteString(k)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(tokens[k])
		_, _ = d.Write([]byte{0x1e})
	}
	return d.Sum64()
}
