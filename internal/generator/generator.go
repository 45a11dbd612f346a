package generator

import (
	"context"
	"fmt"

	"eslap-workspace/internal/config"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Renderer expands a template into a workspace directory.
type Renderer interface {
	Render(ctx context.Context, template string, targetDir string, params interface{}) error
}

/**
 * Create the renderer selected by configuration
 * @param {*config.AppConfig} cfg - Template engine settings
 * @param {billy.Filesystem} workspace - Workspace filesystem the output is written to
 * @returns {Renderer} builtin (Go templates) or command (external generator) renderer
 */
func New(cfg *config.AppConfig, workspace billy.Filesystem) (Renderer, error) {
	switch cfg.Template.Engine {
	case "", config.EngineBuiltin:
		return NewBuiltin(osfs.New(cfg.TemplatesDir()), workspace), nil
	case config.EngineCommand:
		return NewCommand(cfg.Template.Command, cfg.Template.Args, workspace.Root()), nil
	default:
		return nil, fmt.Errorf("unknown template engine '%s'", cfg.Template.Engine)
	}
}
