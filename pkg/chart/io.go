package chart

import (
	"encoding/json"
	"io"
	"os"

	"github.com/tableplan/tableplan/pkg/errors"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// UnmarshalDocument deserializes JSON bytes into a Document.
//
// Two top-level forms are accepted: a document with a "rooms" array, or a
// bare chart object, which is wrapped as a single-room document. Tables
// without IDs are assigned UUIDs. The result is validated before return.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "unmarshal chart document")
	}

	if len(d.Rooms) == 0 {
		// Bare chart form
		var c Chart
		if err := json.Unmarshal(data, &c); err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "unmarshal chart")
		}
		if len(c.Tables) == 0 {
			return Document{}, errors.New(errors.ErrCodeInvalidChart, "chart document contains no tables")
		}
		d.Rooms = []Chart{c}
	}

	for i := range d.Rooms {
		d.Rooms[i].assignIDs()
	}

	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
// Single-room documents are written in the bare chart form for readability.
func MarshalDocument(d Document) ([]byte, error) {
	if len(d.Rooms) == 1 {
		return json.MarshalIndent(d.Rooms[0], "", "  ")
	}
	return json.MarshalIndent(d, "", "  ")
}

// ReadDocument reads a Document from r.
func ReadDocument(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInternal, err, "read chart document")
	}
	return UnmarshalDocument(data)
}

// WriteDocument writes a Document to w as JSON.
func WriteDocument(d Document, w io.Writer) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadDocumentFile reads a Document from a JSON file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return UnmarshalDocument(data)
}

// WriteDocumentFile writes a Document to a JSON file.
func WriteDocumentFile(d Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
