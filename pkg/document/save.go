package document

import (
	"io/fs"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
)

// DefaultBackupSuffix is appended to the file name of backups
const DefaultBackupSuffix = ".old"

// SaveOptions control how a document is written back
type SaveOptions struct {
	// Backup keeps a copy of the previous content next to the file
	Backup bool

	// BackupSuffix defaults to DefaultBackupSuffix
	BackupSuffix string

	// Mode is used for files that did not exist. Zero keeps the existing
	// mode or DefaultMode.
	Mode fs.FileMode
}

// Save writes the document when its content changed. It reports whether
// anything was written.
func (d *Document) Save(opts SaveOptions) (bool, error) {
	logger := logging.GetLogger("document")

	if d.fs == nil || d.path == "" {
		return false, errors.New(errors.ErrFileWrite, "document is not backed by a file")
	}

	if !d.Changed() && d.exists {
		logger.Debug().Str("path", d.path).Msg("Document unchanged, not writing")
		return false, nil
	}

	mode := d.mode
	if !d.exists && opts.Mode != 0 {
		mode = opts.Mode
	}

	if d.exists && opts.Backup {
		suffix := opts.BackupSuffix
		if suffix == "" {
			suffix = DefaultBackupSuffix
		}
		backupPath := d.path + suffix
		if err := d.fs.WriteFile(backupPath, []byte(d.Original()), d.mode); err != nil {
			return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write backup %s", backupPath).
				WithDetail("path", backupPath)
		}
		logger.Info().Str("backup", backupPath).Msg("Backup written")
	}

	if err := d.fs.MkdirAll(d.dir(), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory for %s", d.path).
			WithDetail("path", d.path)
	}

	// Write next to the target then rename so readers never see a partial file.
	tmpPath := d.path + ".rbedit-tmp"
	if err := d.fs.WriteFile(tmpPath, []byte(d.String()), mode); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmpPath).WithDetail("path", d.path)
	}
	if err := d.fs.Rename(tmpPath, d.path); err != nil {
		_ = d.fs.Remove(tmpPath)
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", d.path).WithDetail("path", d.path)
	}

	d.original = append([]string(nil), d.lines...)
	d.exists = true
	d.mode = mode

	logger.Info().
		Str("path", d.path).
		Int("lines", len(d.lines)).
		Msg("Document saved")
	return true, nil
}
