// Package config loads nxj configuration.
//
// Sources are layered, later ones winning:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file, $XDG_CONFIG_HOME/nxj/config.toml
//  3. The project file, nxj.toml or nxj.yaml (or the file given with --config)
//  4. Environment variables, NXJ_ prefixed, with __ separating sections:
//     NXJ_LINK__MAIN_CLASS sets link.main_class
//  5. Overrides, usually command-line flags
//
// The merged tree is decoded into Config with mapstructure.
package config
