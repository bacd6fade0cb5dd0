package transfer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrCollisionExhausted reports that no free name was found within the
// attempt bound. It is a fatal condition, not a per-file error: the
// destination is pathologically cluttered and needs manual attention.
var ErrCollisionExhausted = errors.New("collision resolution exhausted")

// ResolveCollision returns target unchanged when it is free; otherwise
// it appends _NNN (zero-padded, starting at 001) before the extension
// until a free name is found, up to maxAttempts.
func ResolveCollision(target string, maxAttempts int) (string, error) {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return target, nil
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)

	for counter := 1; counter <= maxAttempts; counter++ {
		candidate := fmt.Sprintf("%s_%03d%s", stem, counter, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no free name for %s after %d attempts", ErrCollisionExhausted, target, maxAttempts)
}
