// Package list provides observable ordered collections with structural change
// events (insert, remove, replace, clear, reset).
package list
