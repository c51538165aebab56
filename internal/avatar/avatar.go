// Package avatar turns a local image file into a self-contained data URL
// suitable for storing on the user profile.
package avatar

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// DefaultURL returns the generated avatar for users who never imported one.
// The username seeds the generator so each user gets a stable image.
func DefaultURL(username string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(username)
}

// FromFile reads an image file and encodes it as a data URL
// ("data:<mime>;base64,..."). The file is taken as-is: no size limit and
// no re-encoding.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read avatar file: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
