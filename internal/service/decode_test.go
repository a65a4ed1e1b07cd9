package service

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-appconfig-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    any
		wantErr bool
	}{
		{name: "object", in: `{"timeout": 30}`, want: map[string]any{"timeout": json.Number("30")}},
		{name: "array", in: `[1, "a"]`, want: []any{json.Number("1"), "a"}},
		{name: "large integer", in: `{"account_id": 12345678901234567890}`, want: map[string]any{"account_id": json.Number("12345678901234567890")}},
		{name: "decimal", in: `{"ratio": 0.1}`, want: map[string]any{"ratio": json.Number("0.1")}},
		{name: "scalar", in: `"text"`, want: "text"},
		{name: "null", in: `null`, want: nil},
		{name: "empty", in: ``, wantErr: true},
		{name: "truncated", in: `{"timeout": `, wantErr: true},
		{name: "trailing data", in: `{} {}`, wantErr: true},
		{name: "trailing garbage", in: `{"a": 1} x`, wantErr: true},
		{name: "whitespace only", in: "  \n", wantErr: true},
		{name: "plain text", in: `timeout=30`, wantErr: true},
		{name: "invalid utf8", in: "\"\xff\"", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeJSON([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDecode)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantKind models.ContentKind
		wantDoc  any
	}{
		{
			name:     "nil payload",
			in:       nil,
			wantKind: models.ContentEmpty,
			wantDoc:  map[string]any{},
		},
		{
			name:     "empty payload",
			in:       []byte{},
			wantKind: models.ContentEmpty,
			wantDoc:  map[string]any{},
		},
		{
			name:     "json object",
			in:       []byte(`{"feature": {"enabled": true}}`),
			wantKind: models.ContentParsed,
			wantDoc:  map[string]any{"feature": map[string]any{"enabled": true}},
		},
		{
			name:     "json array",
			in:       []byte(`[1,2]`),
			wantKind: models.ContentParsed,
			wantDoc:  []any{json.Number("1"), json.Number("2")},
		},
		{
			name:     "large integer",
			in:       []byte(`{"account_id": 12345678901234567890}`),
			wantKind: models.ContentParsed,
			wantDoc:  map[string]any{"account_id": json.Number("12345678901234567890")},
		},
		{
			name:     "yaml text",
			in:       []byte("timeout: 30\nretries: 2\n"),
			wantKind: models.ContentRaw,
			wantDoc:  map[string]any{models.RawContentKey: "timeout: 30\nretries: 2\n"},
		},
		{
			name:     "whitespace only",
			in:       []byte("  "),
			wantKind: models.ContentRaw,
			wantDoc:  map[string]any{models.RawContentKey: "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeContent(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantDoc, got.Document())
		})
	}
}

func TestDecodeContent_InvalidUTF8(t *testing.T) {
	got, err := decodeContent([]byte{0xff, 0xfe, 0x00})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, models.DecodedContent{}, got)
}
