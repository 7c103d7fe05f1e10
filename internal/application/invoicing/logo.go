package invoicing

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/crealab/invoice-studio/internal/domain"
)

// MaxLogoBytes caps the raw logo size at 200 KiB. The logo is embedded by
// value into markup and history records, so the cap bounds the history log.
const MaxLogoBytes = 200 * 1024

// IngestLogo validates an uploaded logo and returns it as a data URI.
// Violations come back as domain errors for an inline message, never as a
// failure that touches session state.
func IngestLogo(raw []byte) (string, error) {
	if len(raw) > MaxLogoBytes {
		return "", domain.ErrLogoTooLarge
	}
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", domain.ErrLogoNotImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeLogoDataURI turns a stored data URI back into bytes + MIME for the
// PDF generator. An empty URI decodes to nil (no logo).
func DecodeLogoDataURI(uri string) (*LogoImage, error) {
	if uri == "" {
		return nil, nil
	}
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("logo: not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("logo: malformed data URI")
	}
	mime, _, _ := strings.Cut(meta, ";")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("logo: decode base64: %w", err)
	}
	return &LogoImage{Bytes: raw, MIME: mime}, nil
}
