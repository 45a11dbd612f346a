package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"eslap-workspace/internal/logger"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const templateSuffix = ".tmpl"

// builtinRenderer renders a directory of Go text templates.
type builtinRenderer struct {
	templates billy.Filesystem
	workspace billy.Filesystem
}

// NewBuiltin renders templates found in the templates filesystem into the workspace.
func NewBuiltin(templates billy.Filesystem, workspace billy.Filesystem) Renderer {
	return &builtinRenderer{templates: templates, workspace: workspace}
}

var funcs = template.FuncMap{
	"json": func(v interface{}) (string, error) {
		data, err := json.Marshal(v)
		return string(data), err
	},
	"join": strings.Join,
}

/**
 * Render a template directory
 * @param {string} name - Template directory, absolute or relative to the templates directory
 * @param {string} targetDir - Output directory, relative to the workspace
 * @param {interface{}} params - Template data
 * @description
 * - Every file is executed as a text/template and written keeping its relative path
 * - A ".tmpl" suffix is removed from output file names
 * - Every file is rendered before anything is written, a failing template writes nothing
 */
func (r *builtinRenderer) Render(ctx context.Context, name string, targetDir string, params interface{}) error {
	source, root := r.templates, name
	if filepath.IsAbs(name) {
		source, root = osfs.New(name), "."
	}
	info, err := source.Stat(root)
	if err != nil {
		return fmt.Errorf("template '%s' not found: %w", name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template '%s' is not a directory", name)
	}

	var rendered []renderedFile
	err = util.Walk(source, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		content, err := r.renderFile(source, path, params)
		if err != nil {
			return err
		}
		rendered = append(rendered, renderedFile{
			target:  filepath.Join(targetDir, strings.TrimSuffix(rel, templateSuffix)),
			content: content,
		})
		return nil
	})
	if err != nil {
		return err
	}

	for _, f := range rendered {
		if err := r.workspace.MkdirAll(filepath.Dir(f.target), 0755); err != nil {
			return err
		}
		logger.Debugf("Writing %s", f.target)
		if err := util.WriteFile(r.workspace, f.target, f.content, 0644); err != nil {
			return err
		}
	}
	return nil
}

type renderedFile struct {
	target  string
	content []byte
}

func (r *builtinRenderer) renderFile(source billy.Filesystem, path string, params interface{}) ([]byte, error) {
	content, err := util.ReadFile(source, path)
	if err != nil {
		return nil, err
	}
	tpl, err := template.New(filepath.Base(path)).Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", path, err)
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, params); err != nil {
		return nil, fmt.Errorf("failed to execute template '%s': %w", path, err)
	}
	return out.Bytes(), nil
}
