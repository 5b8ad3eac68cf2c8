package args

// RunMode enumerates the mutually exclusive run modes of a dcj invocation.
// The mode is determined once per invocation from the raw token list,
// before any environment or template work.
type RunMode int

// Run mode constants, in decision-priority order. Help beats Debug when
// both flags are present; the compose help pass-through applies only when
// the help flag is the sole argument.
const (
	ModeNormal RunMode = iota
	ModeHelpPassthrough
	ModeHelp
	ModeDebug
)

func (m RunMode) String() string {
	switch m {
	case ModeHelpPassthrough:
		return "help-passthrough"
	case ModeHelp:
		return "help"
	case ModeDebug:
		return "debug"
	default:
		return "normal"
	}
}

// DetectMode computes the run mode from the raw token list. The rules are
// evaluated in strict priority order and the first match wins:
//
//  1. exactly one token equal to "-h" or "--help": forward it to compose
//  2. any "--jhelp" token: built-in usage text
//  3. any "--jdebug" token: read-only diagnostic pass
//  4. otherwise: full execution
func DetectMode(tokens []string) RunMode {
	if len(tokens) == 1 && (tokens[0] == "-h" || tokens[0] == "--help") {
		return ModeHelpPassthrough
	}
	for _, t := range tokens {
		if t == FlagHelp {
			return ModeHelp
		}
	}
	for _, t := range tokens {
		if t == FlagDebug {
			return ModeDebug
		}
	}
	return ModeNormal
}
