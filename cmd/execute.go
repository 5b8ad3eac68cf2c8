// Package cmd implements the command-line interface and orchestration for
// dcj. It ties the argument rewriter, env-file loader, template renderer,
// and compose runner together, selecting one of four mutually exclusive
// run modes per invocation and propagating the wrapped tool's exit code.
package cmd

import (
	"fmt"
	"os"

	"dcj/internal/args"
	"dcj/internal/compose"
	"dcj/internal/config"
	"dcj/internal/envfile"
	"dcj/internal/errors"
	"dcj/internal/log"
	"dcj/internal/template"
)

// runNormal performs the full execution path: rewrite the arguments, load
// the env file, render the template when one exists, resolve the compose
// runner, and hand off to the child process.
func runNormal(argv []string, deps collaborators) error {
	rewritten, custom, err := args.Rewrite(argv)
	if err != nil {
		return err
	}
	cfg := &config.Config{Tokens: argv, Rewritten: rewritten, Custom: custom}

	// A user-specified env file that does not exist is a warning, not a
	// failure; the run continues with whatever the ambient env provides.
	envPath := cfg.EnvFilePath()
	if custom.EnvFile != "" && !fileExists(envPath) {
		log.Warnf("specified --env-file %q does not exist; continuing without loading it", envPath)
	}
	envfile.Load(envPath, deps.env)

	injectPath, err := renderTemplate(cfg, deps)
	if err != nil {
		return err
	}
	if custom.Dump {
		// renderTemplate already printed the rendered text; compose is
		// never invoked in dump mode.
		return nil
	}

	composeArgv, label, err := deps.resolve()
	if err != nil {
		return err
	}

	final := make([]string, 0, len(composeArgv)+2+len(rewritten))
	final = append(final, composeArgv...)
	if injectPath != "" {
		final = append(final, "-f", injectPath)
	}
	final = append(final, rewritten...)

	fmt.Fprintf(deps.stdout, "[dcj] Using %s: %s\n", label, compose.QuoteCommand(final))
	code, err := deps.runner.Run(final)
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.NewExitStatus(code)
	}
	return nil
}

// renderTemplate handles template detection and rendering for the normal
// path. It returns the output path to inject as a default "-f" pair, or
// "" when no injection is needed. In dump mode the rendered text goes to
// standard output and nothing is written.
func renderTemplate(cfg *config.Config, deps collaborators) (string, error) {
	templatePath := template.Find(".")
	if templatePath == "" {
		if cfg.Custom.Dump {
			return "", errors.NewNoTemplateError()
		}
		return "", nil
	}

	outputPath := cfg.OutputFilePath()
	if err := template.EnsureParentDir(outputPath); err != nil {
		return "", err
	}

	rendered, err := deps.renderer.Render(templatePath, deps.env.Snapshot())
	if err != nil {
		return "", err
	}
	if cfg.Custom.Dump {
		fmt.Fprint(deps.stdout, rendered)
		return "", nil
	}
	if err := template.WriteRendered(outputPath, rendered); err != nil {
		return "", err
	}

	// The rewriter already emitted "-f <value>" for --yml-file; inject
	// the output path only when nothing in the forwarded list selects a
	// compose file.
	if args.HasFileFlag(cfg.Rewritten) {
		return "", nil
	}
	return outputPath, nil
}

// runHelpPassthrough forwards a lone "-h"/"--help" to docker compose,
// prints a hint about the built-in help afterwards, and propagates the
// child exit code unchanged.
func runHelpPassthrough(helpFlag string, deps collaborators) error {
	composeArgv, label, err := deps.resolve()
	if err != nil {
		return err
	}
	final := make([]string, 0, len(composeArgv)+1)
	final = append(final, composeArgv...)
	final = append(final, helpFlag)

	fmt.Fprintf(deps.stdout, "[dcj] Forwarding help to %s: %s\n", label, compose.QuoteCommand(final))
	code, err := deps.runner.Run(final)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.stdout, "[dcj] Tip: For dcj/Jinja help, use --jhelp.")
	if code != 0 {
		return errors.NewExitStatus(code)
	}
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
