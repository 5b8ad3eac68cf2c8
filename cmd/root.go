package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dcj/internal/args"
	"dcj/internal/compose"
	"dcj/internal/envfile"
	"dcj/internal/errors"
	"dcj/internal/template"
)

// collaborators bundles the external capabilities the orchestrator drives:
// the environment store, the template renderer, runner resolution, and
// process execution. Production code uses the real implementations; tests
// substitute fakes without touching the orchestration logic.
type collaborators struct {
	env      envfile.Environment
	renderer template.Renderer
	resolve  func() ([]string, string, error)
	runner   compose.Runner
	stdout   io.Writer
}

func defaultCollaborators() collaborators {
	return collaborators{
		env:      envfile.OSEnvironment{},
		renderer: template.PongoRenderer{},
		resolve:  compose.Resolve,
		runner:   compose.ExecRunner{},
		stdout:   os.Stdout,
	}
}

// Flag parsing is disabled entirely: dcj's argument grammar is a
// pass-through surface where unrecognized tokens, including "-h" and
// "--help", belong to docker compose and must be forwarded unmodified and
// in their original order.
var rootCmd = &cobra.Command{
	Use:   "dcj [dcj-options] [compose-args]",
	Short: "Docker compose wrapper with Jinja-style templated configuration",
	Long: `dcj wraps docker compose with templated configuration and env-file
loading. It detects a Jinja-style template in the working directory, loads
environment variables from a .env file (existing variables win), renders
the template to a compose YAML file, and forwards all other arguments to
docker compose in their original order.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runDCJ,
}

// Execute runs the root command and handles top-level error reporting.
// A child exit status propagates silently as this program's own exit
// code; every other error is printed and mapped through the exit-code
// table (1 generic, 2 dump-without-template).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var status *errors.ExitStatus
		if !stderrors.As(err, &status) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		}
		os.Exit(errors.ExitCode(err))
	}
}

// runDCJ decides the run mode from the raw token list, before any
// environment or template work, and dispatches to the matching terminal
// handler. The four modes are mutually exclusive with strict priority.
func runDCJ(cmd *cobra.Command, argv []string) error {
	deps := defaultCollaborators()
	switch args.DetectMode(argv) {
	case args.ModeHelpPassthrough:
		return runHelpPassthrough(argv[0], deps)
	case args.ModeHelp:
		printUsage(deps.stdout)
		return nil
	case args.ModeDebug:
		return runDebug(args.StripToken(argv, args.FlagDebug), deps)
	default:
		return runNormal(argv, deps)
	}
}
