// Package format converts typed values to and from the text shown in text
// widgets.
package format
