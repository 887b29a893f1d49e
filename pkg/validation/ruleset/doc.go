// Package ruleset declares field validation in YAML documents and applies
// them to a form through a validation manager.
package ruleset
