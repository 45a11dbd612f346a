package utils

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

/**
 * Evaluate a JSONPath expression against a decoded JSON document
 * @param {interface{}} doc - Document decoded into maps and slices
 * @param {string} selector - JSONPath, e.g. "$.servicename" or "$.roles[*].name"
 * @returns {[]interface{}} Every matching value
 */
func Query(doc interface{}, selector string) ([]interface{}, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return x.Get(doc), nil
}
