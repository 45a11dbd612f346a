package utils

import (
	"fmt"
	"strings"
	"text/template"
)

/**
 * Expand a command line written as Go templates
 * @param {string} command - Executable, may reference template fields
 * @param {[]string} args - Arguments, each one a separate template
 * @param {interface{}} data - Template data; a field missing from a map is an error
 * @returns {string} Expanded command
 * @returns {[]string} Expanded arguments, trimmed
 */
func GetCommandLine(command string, args []string, data interface{}) (string, []string, error) {
	cmd, err := expand("command", command, data)
	if err != nil {
		return "", nil, err
	}
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		a, err := expand("arg", arg, data)
		if err != nil {
			return "", nil, err
		}
		expanded = append(expanded, a)
	}
	return cmd, expanded, nil
}

func expand(kind string, text string, data interface{}) (string, error) {
	tpl, err := template.New(kind).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template '%s': %w", kind, text, err)
	}
	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template '%s': %w", kind, text, err)
	}
	return strings.TrimSpace(sb.String()), nil
}
