package loader

import (
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// LoadConfigTree reads a configuration tree and narrows it to root when root
// is not empty
func LoadConfigTree(fsys types.FS, path, root string) (types.ConfigTree, error) {
	logger := logging.GetLogger("loader").With().Str("path", path).Logger()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileLoad, "failed to read profile %s", path).WithDetail("path", path)
	}

	tree, err := ParseConfigTree(data, format)
	if err != nil {
		if e, ok := err.(*errors.EditorError); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	if root != "" {
		if tree, err = SelectRoot(tree, root); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("root", root).
		Int("optionSets", len(tree)).
		Msg("Configuration tree loaded")
	return tree, nil
}

// ParseConfigTree decodes a configuration tree
func ParseConfigTree(data []byte, format Format) (types.ConfigTree, error) {
	if format == FormatXML {
		return parseProfileXML(data)
	}
	raw, err := decodeMap(data, format, errors.ErrProfileLoad)
	if err != nil {
		return nil, err
	}
	return types.ConfigTree(raw), nil
}

// SelectRoot returns the sub-tree found at the "/" separated path root
func SelectRoot(tree types.ConfigTree, root string) (types.ConfigTree, error) {
	current := map[string]interface{}(tree)
	walked := ""
	for _, part := range strings.Split(strings.Trim(root, "/"), "/") {
		if part == "" {
			continue
		}
		walked += "/" + part
		next, ok := current[part]
		if !ok {
			return nil, errors.Newf(errors.ErrProfileLoad, "path %s not found in profile", walked).
				WithDetail("root", root)
		}
		m, ok := types.AsMap(next)
		if !ok {
			return nil, errors.Newf(errors.ErrProfileLoad, "path %s is not a table", walked).
				WithDetail("root", root)
		}
		current = m
	}
	return types.ConfigTree(current), nil
}
