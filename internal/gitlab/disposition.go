package gitlab

import (
	"errors"
	"mime"
	"strings"
)

// ErrMissingFilenameHeader is returned when an archive response carries
// no resolvable Content-Disposition filename. Saving without one is not
// possible; no name is fabricated.
var ErrMissingFilenameHeader = errors.New("response has no Content-Disposition filename")

// filenameFromDisposition extracts the suggested filename from a
// response's Content-Disposition header. Both the quoted and unquoted
// forms of `attachment; filename=...` are accepted.
func filenameFromDisposition(resp *Response) (string, error) {
	header := resp.Header.Get("Content-Disposition")
	if header == "" {
		return "", ErrMissingFilenameHeader
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return name, nil
		}
	}

	// Fallback for servers emitting slightly malformed disposition values
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, "filename=") {
			continue
		}
		name := strings.Trim(strings.TrimPrefix(part, "filename="), `"`)
		if name != "" {
			return name, nil
		}
	}

	return "", ErrMissingFilenameHeader
}
