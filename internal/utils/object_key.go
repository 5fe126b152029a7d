package utils

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/google/uuid"
)

// ObjectKey builds a storage key of the form <kind>s/<yyyy>/<mm>/<uuid><ext>.
// The extension comes from the client file name, lowercased; anything else it carries is discarded.
func ObjectKey(kind domain.MediaKind, fileName string, now time.Time) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(fileName, "\\", "/"))))
	if len(ext) > 10 || strings.ContainsAny(ext, " ?#%") {
		ext = ""
	}
	if kind == "" {
		kind = domain.MediaKindImage
	}
	return fmt.Sprintf("%ss/%04d/%02d/%s%s", kind, now.Year(), int(now.Month()), uuid.NewString(), ext)
}
