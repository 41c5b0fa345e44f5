package config

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
)

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"auto", "term", "text", "json"}

// Config holds rbedit settings
type Config struct {
	Editor Editor `koanf:"editor"`
	Files  Files  `koanf:"files"`
	Output Output `koanf:"output"`
}

// Editor holds the rule selection defaults for a run
type Editor struct {
	RemoveIfUndef   bool `koanf:"remove_if_undef"`
	AlwaysRulesOnly bool `koanf:"always_rules_only"`
}

// Files controls how edited files are written
type Files struct {
	Backup       bool        `koanf:"backup"`
	BackupSuffix string      `koanf:"backup_suffix"`
	Mode         fs.FileMode `koanf:"mode"`
}

// Output controls result rendering
type Output struct {
	Format string `koanf:"format"`
}

// Validate checks values that decoding alone cannot
func (c *Config) Validate() error {
	format := strings.ToLower(c.Output.Format)
	valid := false
	for _, f := range OutputFormats {
		if f == format {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigParse, "unknown output format %q", c.Output.Format).
			WithDetail("valid", strings.Join(OutputFormats, ", "))
	}
	c.Output.Format = format

	if c.Files.Backup && c.Files.BackupSuffix == "" {
		return errors.New(errors.ErrConfigParse, "backup is enabled but backup_suffix is empty")
	}
	if c.Files.Mode&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigParse, "file mode %o has bits outside the permission range", uint32(c.Files.Mode))
	}
	return nil
}
