// Package args implements the argument-rewriting engine and the run-mode
// decision for dcj. It recognizes the small closed set of dcj-only flags,
// replaces each occurrence in place with the docker compose equivalent, and
// passes every other token through unchanged and in its original order.
package args

import (
	"strings"

	"dcj/internal/errors"
)

// Recognized token constants define the complete command-line surface dcj
// consumes itself. Everything else belongs to the wrapped tool and is
// forwarded verbatim.
const (
	FlagYMLFile = "--yml-file"
	FlagEnvFile = "--env-file"
	FlagDump    = "--dump"
	FlagHelp    = "--jhelp"
	FlagDebug   = "--jdebug"
)

// CustomFlags holds the resolved values of the dcj-only flags found during
// a rewrite pass. It is created empty, populated as matching tokens are
// found, and consumed once by the orchestrator after rewriting completes.
type CustomFlags struct {
	YMLFile string
	EnvFile string
	Dump    bool
}

// flagKind is the closed set of recognized flag variants. Matching each
// token against this set once keeps the rewriter exhaustive: adding a new
// custom flag means adding a kind and a case, nothing else.
type flagKind int

const (
	kindNone flagKind = iota
	kindYMLFile
	kindEnvFile
	kindDump
)

// matchToken classifies a single token. For value-taking flags it also
// extracts an inline "=value" when present; hasInline distinguishes
// "--flag=" (empty inline value) from the bare two-token form.
func matchToken(tok string) (kind flagKind, inline string, hasInline bool) {
	switch {
	case tok == FlagYMLFile:
		return kindYMLFile, "", false
	case strings.HasPrefix(tok, FlagYMLFile+"="):
		return kindYMLFile, tok[len(FlagYMLFile)+1:], true
	case tok == FlagEnvFile:
		return kindEnvFile, "", false
	case strings.HasPrefix(tok, FlagEnvFile+"="):
		return kindEnvFile, tok[len(FlagEnvFile)+1:], true
	case tok == FlagDump:
		return kindDump, "", false
	}
	return kindNone, "", false
}

// Rewrite scans the token list once, left to right, with a single forward
// cursor. Each recognized custom flag is replaced in place by zero or more
// equivalent compose tokens; all other tokens are copied through unchanged.
// The relative order of surviving tokens is preserved exactly.
//
// A value-taking flag appearing as the last token with no following value
// is a usage error naming the flag.
func Rewrite(tokens []string) ([]string, CustomFlags, error) {
	var custom CustomFlags
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		kind, value, hasInline := matchToken(tokens[i])
		switch kind {
		case kindYMLFile, kindEnvFile:
			if !hasInline {
				if i+1 >= len(tokens) {
					return nil, CustomFlags{}, errors.NewUsageError(tokens[i])
				}
				i++
				value = tokens[i]
			}
			if kind == kindYMLFile {
				custom.YMLFile = value
				out = append(out, "-f", value)
			} else {
				custom.EnvFile = value
				out = append(out, FlagEnvFile, value)
			}
		case kindDump:
			// dcj-only flag, elided from the forwarded arguments
			custom.Dump = true
		default:
			out = append(out, tokens[i])
		}
	}

	return out, custom, nil
}

// Lookup performs a read-only scan for a flag that may appear as
// "--flag value" or "--flag=value", returning the first value found.
// It shares the trailing-flag error condition with Rewrite so the debug
// pass rejects the same malformed inputs as a normal run.
func Lookup(tokens []string, flag string) (string, bool, error) {
	for i, tok := range tokens {
		if tok == flag {
			if i+1 >= len(tokens) {
				return "", false, errors.NewUsageError(flag)
			}
			return tokens[i+1], true, nil
		}
		if strings.HasPrefix(tok, flag+"=") {
			return tok[len(flag)+1:], true, nil
		}
	}
	return "", false, nil
}

// StripToken returns the token list with every occurrence of tok removed,
// preserving the order of the remaining tokens.
func StripToken(tokens []string, tok string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != tok {
			out = append(out, t)
		}
	}
	return out
}

// HasFileFlag reports whether the token list already selects a compose
// file via "-f" or "--file". It decides whether the default rendered
// output path must be injected ahead of the forwarded arguments.
func HasFileFlag(tokens []string) bool {
	for _, t := range tokens {
		if t == "-f" || t == "--file" {
			return true
		}
	}
	return false
}
