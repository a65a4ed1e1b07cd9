package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-appconfig-reader/models"
)

var (
	errInvalidUTF8  = errors.New("content is not valid UTF-8")
	errTrailingData = errors.New("unexpected data after JSON document")
)

// decodeJSON parses content as a UTF-8 JSON document. Anything else,
// including empty content, is an [ErrDecode]. Numbers are kept as
// [json.Number] so integers of any size survive unchanged.
func decodeJSON(content []byte) (any, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, errInvalidUTF8)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, errTrailingData)
	}

	return value, nil
}

// decodeContent classifies content without using a parse failure as control
// flow: empty content is [models.ContentEmpty], valid JSON is parsed into
// [models.ContentParsed] and any other UTF-8 text is kept as
// [models.ContentRaw]. Only content that is not UTF-8 fails.
func decodeContent(content []byte) (models.DecodedContent, error) {
	if len(content) == 0 {
		return models.DecodedContent{Kind: models.ContentEmpty}, nil
	}

	if !utf8.Valid(content) {
		return models.DecodedContent{}, fmt.Errorf("%w: %w", ErrDecode, errInvalidUTF8)
	}

	if !json.Valid(content) {
		return models.DecodedContent{Kind: models.ContentRaw, Text: string(content)}, nil
	}

	value, err := decodeJSON(content)
	if err != nil {
		return models.DecodedContent{}, err
	}

	return models.DecodedContent{Kind: models.ContentParsed, Value: value}, nil
}
