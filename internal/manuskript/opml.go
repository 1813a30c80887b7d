// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuskript

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Element is a generic XML element: its attributes in document order and its
// child elements. Manuskript's world.opml and plots.xml both fit this shape.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseWorld reads the worldbuilding OPML file and returns the element
// holding the top-level worldbuilding entries (the first child of the
// document root).
func ParseWorld(path string) (*Element, error) {
	root, err := parseXMLFile(path)
	if err != nil {
		return nil, err
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("%s has no body element", path)
	}
	return &root.Children[0], nil
}

// HasPlots reports whether the plots file exists and defines at least one
// plot. A missing file means no plots.
func HasPlots(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	root, err := parseXMLFile(path)
	if err != nil {
		return false, err
	}
	return len(root.Children) > 0, nil
}

func parseXMLFile(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var root Element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &root, nil
}
