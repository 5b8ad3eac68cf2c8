package args

import "testing"

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		expect RunMode
	}{
		{
			name:   "no arguments",
			tokens: []string{},
			expect: ModeNormal,
		},
		{
			name:   "lone -h forwards to compose",
			tokens: []string{"-h"},
			expect: ModeHelpPassthrough,
		},
		{
			name:   "lone --help forwards to compose",
			tokens: []string{"--help"},
			expect: ModeHelpPassthrough,
		},
		{
			name:   "help among other args stays normal",
			tokens: []string{"up", "--help"},
			expect: ModeNormal,
		},
		{
			name:   "jhelp anywhere",
			tokens: []string{"up", "--jhelp", "-d"},
			expect: ModeHelp,
		},
		{
			name:   "jdebug anywhere",
			tokens: []string{"--jdebug", "up"},
			expect: ModeDebug,
		},
		{
			name:   "jhelp wins over jdebug",
			tokens: []string{"--jdebug", "--jhelp"},
			expect: ModeHelp,
		},
		{
			name:   "plain compose args",
			tokens: []string{"up", "-d"},
			expect: ModeNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMode(tt.tokens); got != tt.expect {
				t.Errorf("DetectMode(%q) = %v, want %v", tt.tokens, got, tt.expect)
			}
		})
	}
}

func TestRunModeString(t *testing.T) {
	modes := map[RunMode]string{
		ModeNormal:          "normal",
		ModeHelpPassthrough: "help-passthrough",
		ModeHelp:            "help",
		ModeDebug:           "debug",
	}
	for mode, want := range modes {
		if got := mode.String(); got != want {
			t.Errorf("RunMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}
