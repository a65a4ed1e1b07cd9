// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawContentKey is the single key under which undecodable text content is
// returned.
const RawContentKey = "raw_content"

// ContentKind tells how a configuration payload was decoded.
type ContentKind int

const (
	// ContentEmpty means the payload had no bytes.
	ContentEmpty ContentKind = iota

	// ContentParsed means the payload was valid JSON and Value holds it.
	ContentParsed

	// ContentRaw means the payload was UTF-8 text but not JSON; Text holds it.
	ContentRaw
)

// String returns a lower-case name for k, suitable for log fields.
func (k ContentKind) String() string {
	switch k {
	case ContentEmpty:
		return "empty"
	case ContentParsed:
		return "parsed"
	case ContentRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// DecodedContent is the tagged result of decoding a configuration payload.
type DecodedContent struct {
	Kind  ContentKind
	Value any
	Text  string
}

// Document returns the value handed back to callers:
//   - ContentEmpty  -> empty map;
//   - ContentParsed -> the parsed JSON value;
//   - ContentRaw    -> map with the text under [RawContentKey].
func (d DecodedContent) Document() any {
	switch d.Kind {
	case ContentParsed:
		return d.Value
	case ContentRaw:
		return map[string]any{RawContentKey: d.Text}
	default:
		return map[string]any{}
	}
}
