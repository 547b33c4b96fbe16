// Package fmtstring implements the small template language used by
// ":gen ... <fmt>": a string containing "{v}" or "{v:SPEC}" placeholders
// for the current generated integer.
package fmtstring

import (
	"strconv"
	"strings"

	"github.com/wrenfield/rp/internal/rperr"
)

// Format renders template with v substituted for every {v} or {v:SPEC}
// placeholder. SPEC is an optional "#" (base prefix), an optional
// zero-padded width (e.g. "04"), and exactly one base letter from
// x, X, o, b, d.
func Format(template string, v int64) (string, error) {
	var out strings.Builder
	i := 0
	n := len(template)
	for i < n {
		c := template[i]
		if c != '{' {
			out.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			return "", rperr.New(rperr.CodeFormatError, "unterminated placeholder in %q", template)
		}
		inner := template[i+1 : i+end]
		rendered, err := renderPlaceholder(inner, v)
		if err != nil {
			return "", err
		}
		out.WriteString(rendered)
		i += end + 1
	}
	return out.String(), nil
}

func renderPlaceholder(inner string, v int64) (string, error) {
	name, spec, hasSpec := strings.Cut(inner, ":")
	if name != "v" {
		return "", rperr.New(rperr.CodeFormatError, "unknown placeholder %q", inner)
	}
	if !hasSpec {
		return strconv.FormatInt(v, 10), nil
	}
	return formatSpec(spec, v)
}

func formatSpec(spec string, v int64) (string, error) {
	hashPrefix := false
	if strings.HasPrefix(spec, "#") {
		hashPrefix = true
		spec = spec[1:]
	}

	i := 0
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}
	widthStr := spec[:i]
	rest := spec[i:]

	if len(rest) != 1 {
		return "", rperr.New(rperr.CodeFormatError, "unrecognized format spec %q", spec)
	}

	var base int
	var upper bool
	var prefix string
	switch rest[0] {
	case 'd':
		base = 10
	case 'x':
		base = 16
		prefix = "0x"
	case 'X':
		base = 16
		upper = true
		prefix = "0x"
	case 'o':
		base = 8
		prefix = "0o"
	case 'b':
		base = 2
		prefix = "0b"
	default:
		return "", rperr.New(rperr.CodeFormatError, "unrecognized base letter %q", rest)
	}

	neg := v < 0
	digits := strconv.FormatUint(absUint(v), base)
	if upper {
		digits = strings.ToUpper(digits)
	}

	width := 0
	if widthStr != "" {
		w, err := strconv.Atoi(widthStr)
		if err != nil {
			return "", rperr.New(rperr.CodeFormatError, "invalid width %q", widthStr)
		}
		width = w
	}

	var pfx string
	if hashPrefix {
		pfx = prefix
	}
	if neg {
		pfx = "-" + pfx
	}

	if pad := width - len(pfx) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return pfx + digits, nil
}

func absUint(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
