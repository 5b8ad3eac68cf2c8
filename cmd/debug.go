package cmd

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"dcj/internal/args"
	"dcj/internal/compose"
	"dcj/internal/config"
	"dcj/internal/envfile"
	"dcj/internal/log"
	"dcj/internal/template"
)

// runDebug performs the read-only diagnostic pass: it loads the env file,
// reports what was added, dumps the resulting environment, detects the
// template candidate and the compose runner, previews the argument
// rewrite, and attempts an in-memory render. It never writes files and
// never invokes compose. The token list arrives with --jdebug already
// stripped.
func runDebug(argv []string, deps collaborators) error {
	log.SetDebug(true)

	cwd, _ := os.Getwd()
	log.Debugf("program: dcj %s", config.Version())
	log.Debugf("cwd: %s", cwd)
	log.Debugf("args (without %s): %q", args.FlagDebug, argv)

	envOverride, hasEnvOverride, err := args.Lookup(argv, args.FlagEnvFile)
	if err != nil {
		return err
	}
	envPath := config.DefaultEnvFile
	if hasEnvOverride {
		envPath = envOverride
	}
	log.Debugf("env file: %s (exists=%v)", envPath, fileExists(envPath))
	if hasEnvOverride && !fileExists(envPath) {
		log.Warnf("specified --env-file %q does not exist; continuing without loading it", envPath)
	}

	added := envfile.Load(envPath, deps.env)
	snapshot := deps.env.Snapshot()
	log.Debugf("environment size after load: %d vars", len(snapshot))
	if len(added) > 0 {
		sort.Strings(added)
		log.Debugf("env file added %d vars: %s", len(added), strings.Join(added, ", "))
	} else {
		log.Debugf("env file added 0 vars (ambient values win, or file empty)")
	}
	dumpEnvironment(snapshot)

	log.Debugf("template candidates: %v", config.TemplateCandidates)
	templatePath := template.Find(".")
	log.Debugf("selected template: %q", templatePath)

	ymlOverride, hasYMLOverride, err := args.Lookup(argv, args.FlagYMLFile)
	if err != nil {
		return err
	}
	outputPath := config.DefaultOutputFile
	if hasYMLOverride {
		outputPath = ymlOverride
	}
	log.Debugf("planned output YAML: %s", outputPath)

	if composeArgv, label, err := deps.resolve(); err != nil {
		log.Debugf("compose runner detection failed: %v", err)
	} else {
		log.Debugf("compose runner: %s -> %s", label, compose.QuoteCommand(composeArgv))
	}

	rewritten, custom, err := args.Rewrite(argv)
	if err != nil {
		return err
	}
	wouldInject := templatePath != "" && custom.YMLFile == "" && !args.HasFileFlag(rewritten)
	log.Debugf("rewritten args: %q", rewritten)
	log.Debugf("would inject '-f %s': %v", outputPath, wouldInject)

	if templatePath == "" {
		log.Debugf("no template found, nothing to render")
		log.Debugf("debug run complete, exiting without invoking docker compose")
		return nil
	}

	rendered, err := deps.renderer.Render(templatePath, deps.env.Snapshot())
	if err != nil {
		return err
	}
	log.Debugf("template render OK, %d bytes", len(rendered))
	var doc any
	if err := yaml.Unmarshal([]byte(rendered), &doc); err != nil {
		log.Warnf("rendered output is not valid YAML: %v", err)
	} else {
		log.Debugf("rendered output parses as YAML")
	}
	log.Debugf("use --dump to print the rendered YAML")
	log.Debugf("debug run complete, exiting without invoking docker compose")
	return nil
}

// dumpEnvironment prints every binding in a stable order for inspection.
// Values are printed as-is; debug output goes to stderr and can be
// redirected when values are sensitive.
func dumpEnvironment(snapshot map[string]string) {
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	log.Debugf("dumping %d environment variables:", len(keys))
	for _, k := range keys {
		log.Debugf("env %s=%s", k, snapshot[k])
	}
}
