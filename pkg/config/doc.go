// Package config loads rbedit settings.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/rbedit/config.toml
//  3. an explicit file given with --config
//  4. RBEDIT_ environment variables, "__" separating sections
//     (RBEDIT_EDITOR__REMOVE_IF_UNDEF=true)
//  5. overrides from command line flags
//
// The merged tree is decoded into Config with mapstructure.
package config
