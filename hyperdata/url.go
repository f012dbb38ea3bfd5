// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package hyperdata

import (
	"encoding/base64"
)

// MaybeEncodeName examines an entity type, id, or relation name, and
// if it cannot be directly inserted into a URL path segment as-is,
// base64 encodes it.  The encoded form begins with - and uses the
// URL-safe base64 alphabet with no padding.
func MaybeEncodeName(name string) string {
	// We must encode the empty name, a name starting with "-"
	// (otherwise ambiguous), and a name that includes anything
	// that's not URL-safe.
	safe := true
	if len(name) == 0 {
		safe = false
	} else if name[0] == '-' {
		safe = false
	} else {
		for _, c := range name {
			switch {
			// These characters are "unreserved"
			// in RFC 3986 section 2.3:
			case c == '-', c == '.', c == '_', c == ':',
				(c >= 'a' && c <= 'z'),
				(c >= 'A' && c <= 'Z'),
				(c >= '0' && c <= '9'):
				continue
			default:
				safe = false
			}
			if !safe {
				break
			}
		}
	}
	if safe {
		return name
	}
	return "-" + base64.RawURLEncoding.EncodeToString([]byte(name))
}

// MaybeDecodeName is the dual of MaybeEncodeName.  Names beginning
// with - are base64 decoded; anything else passes through.  Returns an
// error if the string begins with - but the remainder isn't valid
// base64.
func MaybeDecodeName(name string) (string, error) {
	if len(name) == 0 || name[0] != '-' {
		return name, nil
	}
	bytes, err := base64.RawURLEncoding.DecodeString(name[1:])
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
