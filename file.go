package kmlift

import (
	"archive/zip"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// ReadDocument loads a KML document from a .kml file or from the main
// document inside a .kmz archive.
func ReadDocument(filename string) (*etree.Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".kml":
		doc := newDocument()
		if err := doc.ReadFromFile(filename); err != nil {
			return nil, fmt.Errorf("Failed to read %s: %s", filename, err)
		}
		return doc, nil
	case ".kmz":
		return readArchive(filename)
	default:
		return nil, fmt.Errorf("Unsupported file type: %s", filename)
	}
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	return doc
}

// readArchive extracts the main document from a KMZ archive: doc.kml by
// convention, otherwise the first .kml entry.
func readArchive(filename string) (*etree.Document, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to open %s: %s", filename, err)
	}
	defer zr.Close()

	entry := archiveEntry(zr)
	if entry == nil {
		return nil, fmt.Errorf("No KML document found in %s", filename)
	}

	f, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s from %s: %s", entry.Name, filename, err)
	}
	defer f.Close()

	doc := newDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("Failed to parse %s from %s: %s", entry.Name, filename, err)
	}
	return doc, nil
}

func archiveEntry(zr *zip.ReadCloser) *zip.File {
	for _, f := range zr.File {
		if f.Name == "doc.kml" {
			return f
		}
	}
	for _, f := range zr.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			return f
		}
	}
	return nil
}

// OutputFilename derives the output name for an input file: the extension
// is replaced by the suffix plus .kml, next to the input.
func OutputFilename(filename, suffix string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + suffix + ".kml"
}

// ProcessFile lifts a single input file and writes the result. The output
// is a complete copy of the document and is written even when no path
// changed. Returns the number of rewritten coordinates elements.
func ProcessFile(infile, outfile string, axes []Axis) (int, error) {
	doc, err := ReadDocument(infile)
	if err != nil {
		return 0, err
	}

	changed, err := ProcessDocument(doc, axes)
	if err != nil {
		return changed, err
	}

	if err := doc.WriteToFile(outfile); err != nil {
		return changed, fmt.Errorf("Failed to write %s: %s", outfile, err)
	}
	return changed, nil
}
