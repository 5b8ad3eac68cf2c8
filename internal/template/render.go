// Package template wraps the external templating engine behind a small
// capability interface and handles template detection and rendered-output
// writing. The engine itself (pongo2, a Jinja2-style library) is consumed
// as a black box: dcj never interprets template syntax on its own.
package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v4"
	"github.com/natefinch/atomic"

	"dcj/internal/config"
	"dcj/internal/errors"
)

// Renderer is the template-rendering capability the orchestrator depends
// on. Modeling it as an interface lets orchestration tests run against a
// fake without invoking a real templating engine.
type Renderer interface {
	// Render renders the template file against the given variable
	// bindings and returns the rendered text.
	Render(templatePath string, vars map[string]string) (string, error)
}

// PongoRenderer implements Renderer with the pongo2 engine.
type PongoRenderer struct{}

// Render loads and executes the template, exposing every binding as a
// template variable. Syntax and execution failures are wrapped as render
// errors carrying the template path.
func (PongoRenderer) Render(templatePath string, vars map[string]string) (string, error) {
	tpl, err := pongo2.FromFile(templatePath)
	if err != nil {
		return "", errors.NewRenderError(templatePath, err)
	}
	ctx := make(pongo2.Context, len(vars))
	for k, v := range vars {
		ctx[k] = v
	}
	rendered, err := tpl.Execute(ctx)
	if err != nil {
		return "", errors.NewRenderError(templatePath, err)
	}
	return rendered, nil
}

// Find returns the first existing template among the fixed candidate
// names, tried in priority order inside dir. Existence as a regular file
// is the only test applied; an empty string means no candidate exists.
func Find(dir string) string {
	for _, name := range config.TemplateCandidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// EnsureParentDir creates the output path's parent directory when it is
// missing, so nested --yml-file paths work without manual setup.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewFileError(dir, "failed to create output directory", err)
	}
	return nil
}

// WriteRendered writes the rendered text to path atomically, so a failed
// write never leaves a truncated compose file behind.
func WriteRendered(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return errors.NewFileError(path, "failed to write rendered file", err)
	}
	return nil
}
