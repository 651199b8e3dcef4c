package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"ytfetch/internal/utils/errs"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

var allowedHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// ExtractVideoID resolves a submitted URL into the canonical video id.
// Canonical watch links, /v/ and /embed/ forms and youtu.be short links all
// resolve to the same id.
func ExtractVideoID(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", errs.ErrInvalidURL, u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if !allowedHosts[host] {
		return "", fmt.Errorf("%w: host %q is not allowed", errs.ErrInvalidURL, host)
	}

	var id string
	if host == "youtu.be" {
		id, err = shortLinkID(u)
	} else {
		id, err = watchLinkID(u)
	}
	if err != nil {
		return "", err
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: malformed video id %q", errs.ErrInvalidURL, id)
	}

	return id, nil
}

func shortLinkID(u *url.URL) (string, error) {
	path := strings.Trim(u.Path, "/")
	if path == "" || strings.Contains(path, "/") {
		return "", fmt.Errorf("%w: malformed short link path %q", errs.ErrInvalidURL, u.Path)
	}
	return path, nil
}

func watchLinkID(u *url.URL) (string, error) {
	if rest, ok := strings.CutPrefix(u.Path, "/v/"); ok {
		return rest, nil
	}
	if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
		return rest, nil
	}

	if u.Path != "/watch" {
		return "", fmt.Errorf("%w: unsupported path %q", errs.ErrInvalidURL, u.Path)
	}

	ids := u.Query()["v"]
	switch {
	case len(ids) == 0:
		return "", fmt.Errorf("%w: missing video id parameter", errs.ErrInvalidURL)
	case len(ids) > 1 && !allEqual(ids):
		return "", fmt.Errorf("%w: conflicting video id parameters", errs.ErrInvalidURL)
	}
	return ids[0], nil
}

func allEqual(values []string) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func ValidateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return errs.ErrInvalidUsername
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return errs.ErrInvalidUsername
		}
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.':
		return true
	}
	return false
}

func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.ErrInvalidPassword
	}
	return nil
}
