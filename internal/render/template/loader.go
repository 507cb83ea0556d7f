// Package template provides utilities for loading renderer templates with custom override support.
package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Loader handles loading templates with support for custom overrides.
// It checks for custom templates in {customBase}/{rendererName}/
// and falls back to embedded templates if custom ones don't exist.
type Loader struct {
	rendererName string
	embedFS      fs.FS
	customBase   string
	logger       hclog.Logger
}

// DefaultCustomBase returns ~/.config/devpalette/templates, or an empty
// string when the home directory is unknown.
func DefaultCustomBase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "devpalette", "templates")
}

// New creates a new template loader for the specified renderer.
// embedFS should contain the renderer's default templates.
func New(rendererName string, embedFS fs.FS) *Loader {
	return &Loader{
		rendererName: rendererName,
		embedFS:      embedFS,
		customBase:   DefaultCustomBase(),
		logger:       hclog.NewNullLogger(),
	}
}

// WithCustomBase sets a custom base directory for template storage.
// An empty base keeps the current one.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	if customBase != "" {
		l.customBase = customBase
	}
	return l
}

// WithLogger sets the logger used to report which template was picked.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template file, checking for custom overrides first.
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customBase != "" {
		customPath := l.CustomPath(filename)
		if content, err := os.ReadFile(customPath); err == nil { // #nosec G304 - user template directory
			l.logger.Debug("using custom template", "path", customPath)
			return content, true, nil
		}
	}

	l.logger.Debug("using embedded template", "renderer", l.rendererName, "template", filename)

	content, err = fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.rendererName, filename)
}

// ListEmbeddedTemplates returns a list of all embedded template files.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplate writes an embedded template to the custom templates directory.
// If force is false, it will not overwrite existing custom templates.
func (l *Loader) DumpTemplate(filename string, force bool) (string, error) {
	if l.customBase == "" {
		return "", fmt.Errorf("no custom template directory configured")
	}

	content, err := fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("custom template already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", outputDir, err)
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil { // #nosec G306 - templates are not secret
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return outputPath, nil
}

// DumpAllTemplates writes all embedded templates to the custom templates directory.
// Existing templates are skipped (and reported) unless force is set.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []string

	for _, tmpl := range templates {
		path, err := l.DumpTemplate(tmpl, force)
		if err != nil {
			if !force && strings.Contains(err.Error(), "already exists") {
				skipped = append(skipped, err.Error())
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, path)
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%s", strings.Join(skipped, "; "))
	}

	return dumped, nil
}
