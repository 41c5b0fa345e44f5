package loader

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/types"
)

const nameAttr = "name"

// parseProfileXML converts a profile written in the typed XML format. The
// root element is the profile itself and becomes the tree.
func parseProfileXML(data []byte) (types.ConfigTree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileLoad, "failed to parse XML profile")
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrProfileLoad, "XML profile has no root element")
	}
	if root.Tag != "nlist" {
		return nil, errors.Newf(errors.ErrProfileLoad, "XML profile root must be an nlist, got <%s>", root.Tag)
	}

	value, err := xmlValue(root)
	if err != nil {
		return nil, err
	}
	tree, _ := types.AsMap(value)
	return types.ConfigTree(tree), nil
}

func xmlValue(el *etree.Element) (interface{}, error) {
	text := strings.TrimSpace(el.Text())

	switch el.Tag {
	case "nlist":
		m := make(map[string]interface{})
		for _, child := range el.ChildElements() {
			name := child.SelectAttrValue(nameAttr, "")
			if name == "" {
				return nil, xmlError(child, "element inside an nlist has no name")
			}
			v, err := xmlValue(child)
			if err != nil {
				return nil, err
			}
			m[name] = v
		}
		return m, nil

	case "list":
		list := make([]interface{}, 0, len(el.ChildElements()))
		for _, child := range el.ChildElements() {
			v, err := xmlValue(child)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil

	case "string":
		return el.Text(), nil

	case "long":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, xmlError(el, "invalid long %q", text)
		}
		return n, nil

	case "double":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, xmlError(el, "invalid double %q", text)
		}
		return f, nil

	case "boolean":
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, xmlError(el, "invalid boolean %q", text)
		}
		return b, nil

	default:
		return nil, xmlError(el, "unknown element <%s>", el.Tag)
	}
}

func xmlError(el *etree.Element, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrProfileLoad, format, args...).
		WithDetail("element", el.GetPath())
}
