package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"eslap-workspace/internal/admission"
	"eslap-workspace/internal/config"
	"eslap-workspace/internal/generator"
	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/manifest"
	"eslap-workspace/internal/models"
	"eslap-workspace/internal/resolver"
	"eslap-workspace/internal/stamp"
)

/**
 * Workspace groups the managers operating on one workspace directory
 * @description
 * - Managers keep no state of their own, every call reads the workspace again
 * - Calls on different deployments or services can run in parallel
 */
type Workspace struct {
	root     string
	store    *manifest.Store
	resolver *resolver.Resolver
	registry *stamp.Registry
	bridge   *stamp.Bridge
	renderer generator.Renderer

	Deployments *DeploymentManager
	Services    *ServiceManager
	Components  *ComponentManager
	Stamps      *StampManager
}

/**
 * Open the workspace described by the application configuration
 * @param {*config.AppConfig} cfg - Workspace path, template engine and admission settings
 * @returns {*Workspace} Workspace backed by the local filesystem and HTTP admission stubs
 */
func OpenWorkspace(cfg *config.AppConfig) (*Workspace, error) {
	store := manifest.NewStore(cfg.Workspace.Path)
	renderer, err := generator.New(cfg, store.Filesystem())
	if err != nil {
		return nil, err
	}
	return NewWorkspace(cfg.Workspace.Path, store,
		stamp.NewRegistry(cfg.WorkspaceFile()),
		admission.NewStubFactory(cfg.Admission.Timeout),
		renderer), nil
}

// NewWorkspace wires a workspace from its parts; tests use it with memfs stores and fake stubs.
func NewWorkspace(root string, store *manifest.Store, registry *stamp.Registry, factory admission.StubFactory, renderer generator.Renderer) *Workspace {
	w := &Workspace{
		root:     root,
		store:    store,
		resolver: resolver.New(store),
		registry: registry,
		bridge:   stamp.NewBridge(factory),
		renderer: renderer,
	}
	w.Deployments = &DeploymentManager{w: w}
	w.Services = &ServiceManager{w: w}
	w.Components = &ComponentManager{w: w}
	w.Stamps = &StampManager{w: w}
	return w
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) Registry() *stamp.Registry {
	return w.registry
}

// path returns a workspace relative path as seen from the caller.
func (w *Workspace) path(rel string) string {
	return filepath.Join(w.root, rel)
}

// checkName rejects names that would place generated files outside their workspace directory.
func checkName(field string, value string) error {
	if value == "" || value == "." || strings.Contains(value, "..") || strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("%w: %s '%s'", models.ErrInvalidName, field, value)
	}
	return nil
}

func (w *Workspace) render(ctx context.Context, kind string, template string, targetDir string, params interface{}) error {
	err := w.renderer.Render(ctx, template, targetDir, params)
	observeGenerator(kind, err)
	if err != nil {
		logger.Errorf("Generator failed for template '%s' into %s: %v", template, targetDir, err)
		return fmt.Errorf("%w: %w", models.ErrGeneratorFailed, err)
	}
	return nil
}

func (w *Workspace) resolveStamp(name string) (models.StampConfig, error) {
	cfg, err := w.registry.Resolve(name)
	if err != nil {
		logger.Errorf("Cannot resolve stamp '%s': %v", name, err)
	}
	return cfg, err
}
