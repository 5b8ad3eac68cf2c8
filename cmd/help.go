package cmd

import (
	"fmt"
	"io"

	"dcj/internal/config"
)

// printUsage writes the built-in usage text. This is dcj's own help; the
// wrapped tool's help is reached by invoking dcj with only "-h" or
// "--help".
func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: dcj [dcj-options] [compose-args]

Docker Compose Jinja Templates 'Plugin' (dcj)
Version: %s
Author: %s

Behavior:
  - If a template file exists (docker-compose.jinja(.yml) or docker-compose.j2(.yml)), it is rendered to a YAML file
    (default: docker-compose.yml, override with --yml-file).
  - Loads environment variables from a .env file by default (override with --env-file). Existing env vars win.
  - Forwards all other arguments to docker compose (prefers 'docker compose', falls back to 'docker-compose').
  - Parameter order is preserved.

dcj options:
  --yml-file <file>      Render the template to <file>; the equivalent "-f <file>" is passed to docker compose.
  --env-file <file>      Load env vars from <file>; the equivalent "--env-file <file>" is passed to docker compose.
  --dump                 Print the rendered YAML to stdout instead of writing a file or invoking compose.
  --jdebug               Show dcj debug info (including an environment variable dump) and exit. No compose is invoked.
  --jhelp                Show this dcj help and exit. (To ask Docker Compose for help, run with only -h or --help.)

Notes:
  - If you run dcj with only "-h" or "--help" and no other arguments, dcj will forward that to Docker Compose
    and then print a brief note reminding you that "--jhelp" is available for dcj/Jinja help.
  - Any other occurrence of "-h"/"--help" among additional arguments is forwarded to Docker Compose unchanged.

Debugging examples:
  dcj --jdebug         # print dcj/Jinja diagnostics and exit (no compose)
  dcj --dump           # print rendered YAML to stdout (no compose)
`, config.Version(), config.Author())
}
