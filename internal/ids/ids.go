package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a 32-character hex identifier, the format every table in the
// schema uses for primary keys.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
