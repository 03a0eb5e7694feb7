// Package parser turns Tableau workbook XML into the typed metadata graph.
//
// The Load step builds a generic, read-only element tree; every extractor in
// this package is a pure function of that tree and performs no I/O. Attribute
// and child access is nil-safe and reports absence instead of assuming
// presence, so older and newer schema variants degrade gracefully.
package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// OldestSupportedVersion is assumed when the root element declares no
	// version; extractors then run in degraded mode.
	OldestSupportedVersion = "8.0"
	// LatestKnownVersion is the newest schema these extraction rules were
	// written against. Newer documents are processed best-effort.
	LatestKnownVersion = "18.1"
)

// ErrMissingRoot indicates the document has no workbook root element.
var ErrMissingRoot = errors.New("missing workbook root element")

// MalformedDocumentError is the fatal whole-parse failure: the input is not
// well-formed markup or lacks the workbook root. No partial metadata is
// produced when it is returned.
type MalformedDocumentError struct {
	// Line is the 1-based line of the syntax error, 0 if unknown.
	Line int
	// Offset is the byte offset reached by the decoder, -1 if unknown.
	Offset int64
	// Err is the underlying cause.
	Err error
}

func (e *MalformedDocumentError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("malformed workbook document at line %d: %v", e.Line, e.Err)
	case e.Offset >= 0:
		return fmt.Sprintf("malformed workbook document at byte %d: %v", e.Offset, e.Err)
	default:
		return fmt.Sprintf("malformed workbook document: %v", e.Err)
	}
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// Element is one node of the parsed document tree. The tree is read-only
// after Load returns; extractors only traverse it.
type Element struct {
	// Name is the element's local name, namespace prefixes stripped.
	Name string
	// Attrs maps local attribute names to their values.
	Attrs map[string]string
	// Text is the concatenated character data directly inside the element.
	Text string
	// Children are the child elements in document order.
	Children []*Element
}

// Attr returns the named attribute and whether it is present. Safe on nil.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrDefault returns the named attribute or def when absent.
func (e *Element) AttrDefault(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// AttrPtr returns a pointer to the attribute value, nil when absent. The
// distinction keeps "not declared" separate from "declared empty".
func (e *Element) AttrPtr(name string) *string {
	if v, ok := e.Attr(name); ok {
		return &v
	}
	return nil
}

// Child returns the first direct child with the given name, nil when absent.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given name, in order.
func (e *Element) ChildrenNamed(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant with the given name in depth-first
// document order, nil when absent. The receiver itself is not considered.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given name in depth-first
// document order.
func (e *Element) FindAll(name string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// TrimmedText returns the element text with surrounding whitespace removed.
func (e *Element) TrimmedText() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text)
}

// Document is the loaded, navigable workbook tree plus its resolved version.
type Document struct {
	// Root is the workbook root element.
	Root *Element
	// Version is the version string declared on the root, empty if absent.
	Version string
}

// DeclaredOrAssumedVersion returns the declared version, or the oldest
// supported schema version plus degraded=true when none was declared.
func (d *Document) DeclaredOrAssumedVersion() (version string, degraded bool) {
	if d == nil || d.Version == "" {
		return OldestSupportedVersion, true
	}
	return d.Version, false
}

// VersionNewerThanKnown reports whether a declared version string is newer
// than LatestKnownVersion. Unparsable versions are not considered newer.
func VersionNewerThanKnown(version string) bool {
	declMajor, declMinor, ok := parseVersion(version)
	if !ok {
		return false
	}
	knownMajor, knownMinor, _ := parseVersion(LatestKnownVersion)
	if declMajor != knownMajor {
		return declMajor > knownMajor
	}
	return declMinor > knownMinor
}

func parseVersion(v string) (major, minor int, ok bool) {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) == 0 || parts[0] == "" {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	if len(parts) > 1 {
		minor, err = strconv.Atoi(parts[1])
		if err != nil {
			return major, 0, true
		}
	}
	return major, minor, true
}

// Load parses raw workbook XML bytes into a Document. It performs syntactic
// well-formedness checks only; a non-XML input or a missing workbook root
// yields a *MalformedDocumentError.
func Load(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				el.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					el.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, malformed(dec, errors.New("multiple root elements"))
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, malformed(dec, errors.New("unexpected end element"))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, &MalformedDocumentError{Offset: -1, Err: errors.New("document contains no elements")}
	}
	if len(stack) != 0 {
		return nil, malformed(dec, errors.New("unclosed element"))
	}
	if root.Name != "workbook" {
		return nil, &MalformedDocumentError{Offset: -1, Err: fmt.Errorf("%w: found <%s>", ErrMissingRoot, root.Name)}
	}

	return &Document{
		Root:    root,
		Version: root.AttrDefault("version", ""),
	}, nil
}

func malformed(dec *xml.Decoder, err error) *MalformedDocumentError {
	me := &MalformedDocumentError{Offset: dec.InputOffset(), Err: err}
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		me.Line = syn.Line
	}
	return me
}

// CleanFieldName removes Tableau's bracket quoting from a field reference:
// "[Region]" becomes "Region". Unquoted names pass through unchanged.
func CleanFieldName(name string) string {
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") && len(name) >= 2 {
		return name[1 : len(name)-1]
	}
	return name
}
