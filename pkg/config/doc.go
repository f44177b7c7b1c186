/*
Package config provides configuration loading and validation for Registrar.

Configuration is read from a YAML file, filled in with defaults, optionally
overridden by REGISTRAR_* environment variables, and validated before use:

	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
	if err != nil {
		return err
	}

For application startup the package also maintains a global singleton:

	if err := config.Initialize(cfgFile); err != nil {
		return err
	}
	cfg := config.GetConfig()

Validation errors are collected into a ValidationError listing every failing
field rather than stopping at the first problem.
*/
package config
