package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"eslap-workspace/internal/logger"
	"eslap-workspace/internal/utils"
)

// commandRenderer delegates generation to an external program such as yeoman.
type commandRenderer struct {
	command string
	args    []string
	workDir string
}

// NewCommand runs command with args expanded over Template, TargetDir and Params (JSON).
func NewCommand(command string, args []string, workDir string) Renderer {
	return &commandRenderer{command: command, args: args, workDir: workDir}
}

func (r *commandRenderer) Render(ctx context.Context, name string, targetDir string, params interface{}) error {
	encoded, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode template params: %w", err)
	}
	workDir, err := filepath.Abs(r.workDir)
	if err != nil {
		return err
	}
	target := targetDir
	if !filepath.IsAbs(target) {
		target = filepath.Join(workDir, targetDir)
	}
	if target, err = filepath.Abs(target); err != nil {
		return err
	}
	if rel, err := filepath.Rel(workDir, target); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("target directory '%s' is outside the workspace %s", targetDir, workDir)
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return err
	}

	command, args, err := utils.GetCommandLine(r.command, r.args, map[string]string{
		"Template":  name,
		"TargetDir": target,
		"Params":    string(encoded),
	})
	if err != nil {
		return err
	}

	logger.Infof("Running generator: %s %s", command, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = target
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", command, err, strings.TrimSpace(string(output)))
	}
	return nil
}
