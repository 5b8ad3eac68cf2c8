// Package config centralizes the fixed file names, runtime settings, and
// version metadata for dcj. It provides a single source of truth for the
// template candidate list and the default output and env-file names, and
// resolves user overrides against those defaults.
package config

import (
	"os"

	"dcj/internal/args"
)

// Fixed file names consumed and produced by the wrapper. The template
// candidates are tried in this exact priority order; existence in the
// working directory is the only test applied.
const (
	DefaultOutputFile = "docker-compose.yml"
	DefaultEnvFile    = ".env"
)

// TemplateCandidates lists the template file names recognized in the
// working directory, highest priority first.
var TemplateCandidates = []string{
	"docker-compose.jinja.yml",
	"docker-compose.jinja",
	"docker-compose.j2.yml",
	"docker-compose.j2",
}

// Version and author metadata, overridable at run time through the
// DCJ_VERSION and DCJ_AUTHOR environment variables.
const (
	defaultVersion = "1.1.5"
	defaultAuthor  = "Matt Lowe <marl.scot.1@googlemail.com>"
)

// Version returns the reported dcj version, honoring the DCJ_VERSION
// environment override.
func Version() string {
	if v := os.Getenv("DCJ_VERSION"); v != "" {
		return v
	}
	return defaultVersion
}

// Author returns the reported author string, honoring the DCJ_AUTHOR
// environment override.
func Author() string {
	if a := os.Getenv("DCJ_AUTHOR"); a != "" {
		return a
	}
	return defaultAuthor
}

// Config holds the per-invocation state produced by the argument rewriter.
// It keeps the raw tokens, the rewritten forwarding list, and the resolved
// custom flags together so the orchestrator has one place to ask for the
// effective env-file and output paths.
type Config struct {
	Tokens    []string
	Rewritten []string
	Custom    args.CustomFlags
}

// EnvFilePath resolves the env file to load: the --env-file override when
// given, otherwise the fixed default name.
func (c *Config) EnvFilePath() string {
	if c.Custom.EnvFile != "" {
		return c.Custom.EnvFile
	}
	return DefaultEnvFile
}

// OutputFilePath resolves where the rendered template is written: the
// --yml-file override when given, otherwise the fixed default name.
func (c *Config) OutputFilePath() string {
	if c.Custom.YMLFile != "" {
		return c.Custom.YMLFile
	}
	return DefaultOutputFile
}
