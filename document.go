package kmlift

import (
	"errors"

	"github.com/beevik/etree"
)

// ProcessDocument lifts the path of every coordinates element in the
// document and rewrites the elements that changed. Returns the number of
// rewritten elements.
func ProcessDocument(doc *etree.Document, axes []Axis) (int, error) {
	root := doc.Root()
	if root == nil {
		return 0, errors.New("Document has no root element")
	}

	changed := 0
	for _, el := range coordinateElements(root) {
		path, err := ParsePath(el.Text())
		if err != nil {
			return changed, err
		}
		if len(path) == 0 {
			continue
		}

		lifted, err := path.Lift(axes)
		if err != nil {
			return changed, err
		}
		if lifted {
			el.SetText(path.String())
			changed++
		}
	}
	return changed, nil
}

// coordinateElements collects, in document order, every element whose
// local name is coordinates, regardless of namespace.
func coordinateElements(el *etree.Element) []*etree.Element {
	var out []*etree.Element
	if el.Tag == "coordinates" {
		out = append(out, el)
	}
	for _, child := range el.ChildElements() {
		out = append(out, coordinateElements(child)...)
	}
	return out
}
