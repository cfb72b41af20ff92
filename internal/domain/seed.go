package domain

import (
	"crypto/md5" //nolint:gosec // not used for security; the digest is a stable mixing function
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// SeedNumber maps a tuple of scalar parts to a reproducible pseudo-random
// integer in [0, modulo). The parts are rendered canonically (see
// canonicalScalar), joined with "|", digested with MD5, and the first 8 hex
// characters are parsed as an unsigned integer and reduced mod modulo.
//
// The output is part of the service's observable contract: trend values and
// fallback scores served to clients must not change between calls, restarts,
// or releases for the same inputs. Neither the digest, the delimiter, nor the
// formatting may change.
func SeedNumber(modulo int, parts ...any) int {
	rendered := make([]string, len(parts))
	for i, part := range parts {
		rendered[i] = canonicalScalar(part)
	}
	sum := md5.Sum([]byte(strings.Join(rendered, "|"))) //nolint:gosec
	digest := hex.EncodeToString(sum[:])

	n, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		// Unreachable: an MD5 hex digest always parses.
		panic(fmt.Sprintf("seed digest %q: %v", digest[:8], err))
	}
	return int(n % uint64(modulo))
}

// canonicalScalar renders a part in its fixed textual form. Floats use the
// shortest round-trip decimal representation, with ".0" appended for integral
// values so 30 renders as "30.0" — the form historically hashed for these
// coordinates. Changing this shifts every synthetic value served.
func canonicalScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(v)
	}
}
