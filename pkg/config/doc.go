// Package config loads process configuration with viper: validation style
// names, the theme used to override them, the rule set path and the bean
// commit mode.
package config
