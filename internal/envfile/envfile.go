// Package envfile implements a dependency-free .env-style file loader.
// It parses KEY=VALUE lines with quoting, escaping, inline comments, and
// an optional "export" prefix, installing each binding into an explicit
// environment store. Bindings already present in the store are never
// overwritten: the ambient environment always wins over the file.
//
// Variable references (e.g. ${VAR}) are not expanded.
package envfile

import (
	"os"
	"regexp"
	"strings"

	"dcj/internal/log"
)

// Environment is the key-value store the loader writes into and the
// template renderer reads from. Modeling it as an explicit capability
// rather than a hidden global keeps first-writer-wins semantics visible
// and lets tests substitute an in-memory store.
type Environment interface {
	// Lookup returns the value bound to key and whether the key exists.
	Lookup(key string) (string, bool)
	// InsertIfAbsent installs the binding only when the key is not
	// already present, reporting whether it was installed.
	InsertIfAbsent(key, value string) bool
	// Snapshot returns a copy of all current bindings.
	Snapshot() map[string]string
}

// OSEnvironment implements Environment over the process-wide environment
// variable table.
type OSEnvironment struct{}

func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnvironment) InsertIfAbsent(key, value string) bool {
	if _, exists := os.LookupEnv(key); exists {
		return false
	}
	if err := os.Setenv(key, value); err != nil {
		log.Warnf("failed to set %s: %v", key, err)
		return false
	}
	return true
}

func (OSEnvironment) Snapshot() map[string]string {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok {
			snapshot[k] = v
		}
	}
	return snapshot
}

// MapEnvironment implements Environment over a plain map. It backs tests
// and any caller that wants loader semantics without touching the real
// process environment.
type MapEnvironment map[string]string

func (m MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnvironment) InsertIfAbsent(key, value string) bool {
	if _, exists := m[key]; exists {
		return false
	}
	m[key] = value
	return true
}

func (m MapEnvironment) Snapshot() map[string]string {
	snapshot := make(map[string]string, len(m))
	for k, v := range m {
		snapshot[k] = v
	}
	return snapshot
}

// keyPattern restricts env keys to letters, digits, and underscore.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Load parses the file at path and installs each valid binding into env,
// returning the keys that were actually added. A missing file is not a
// failure and yields no keys. Per-line problems (no '=', invalid key) are
// logged as diagnostics and skipped; an I/O error is reported as a warning
// and treated as nothing loaded. Load never aborts the run.
func Load(path string, env Environment) []string {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("failed to load env file %q: %v", path, err)
		return nil
	}

	var added []string
	text := strings.TrimPrefix(string(data), "\uFEFF")
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > len("export ") && strings.EqualFold(line[:len("export ")], "export ") {
			line = strings.TrimSpace(line[len("export "):])
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			log.Debugf("skipping env line without '=': %s", strings.TrimRight(raw, "\r\n"))
			continue
		}
		key = strings.TrimSpace(key)
		value = parseValue(strings.TrimSpace(value))

		if !keyPattern.MatchString(key) {
			log.Debugf("skipping invalid env key: %q", key)
			continue
		}
		if env.InsertIfAbsent(key, value) {
			added = append(added, key)
		}
	}
	return added
}

// parseValue applies the inline-comment, quoting, and escape rules to a
// raw value. Values not fully wrapped in a single matching quote pair are
// truncated at the first unescaped, unquoted '#'. A matching quote pair is
// removed; escape sequences are decoded for double-quoted values only,
// single-quoted values stay verbatim.
func parseValue(value string) string {
	if !isQuoted(value) {
		value = strings.TrimSpace(stripInlineComment(value))
	}
	if isQuoted(value) {
		quote := value[0]
		value = value[1 : len(value)-1]
		if quote == '"' {
			value = decodeEscapes(value)
		}
	}
	return value
}

// isQuoted reports whether the value is fully wrapped in one matching
// pair of single or double quotes.
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"')
}

// stripInlineComment truncates the value at the first '#' that is neither
// escaped nor inside single or double quotes. A backslash escapes the next
// character and suspends quote toggling for it.
func stripInlineComment(s string) string {
	var inSingle, inDouble, escaped bool
	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return strings.TrimRight(s[:i], " \t")
			}
		}
	}
	return strings.TrimRight(s, " \t")
}

var escapeDecoder = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\"`, `"`,
	`\'`, "'",
)

// decodeEscapes turns the supported escape sequences of double-quoted
// values into their literal characters.
func decodeEscapes(s string) string {
	return escapeDecoder.Replace(s)
}
