// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"context"
	"errors"
	"testing"

	"github.com/bureau-foundation/blobkit/lib/fault"
)

func TestText(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		name    string
		data    []byte
		charset string
		want    string
	}{
		{"default utf8", []byte("héllo"), "", "héllo"},
		{"explicit utf8", []byte("héllo"), "UTF-8", "héllo"},
		{"latin1", []byte{'h', 0xe9, 'l', 'l', 'o'}, "latin1", "héllo"},
		{"windows-1252 alias", []byte{0x80}, "windows-1252", "€"},
		{"invalid utf8 replaced", []byte{'a', 0xff, 'b'}, "", "a�b"},
		{"empty", nil, "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Text(ctx, Payload{Data: test.data}, test.charset)
			if err != nil {
				t.Fatalf("Text: %v", err)
			}
			if got != test.want {
				t.Errorf("Text = %q, want %q", got, test.want)
			}
		})
	}
}

func TestTextUnknownCharset(t *testing.T) {
	t.Parallel()

	_, err := Text(context.Background(), Payload{Data: []byte("x")}, "klingon-8")
	if !errors.Is(err, fault.KindRead) {
		t.Errorf("error = %v, want KindRead", err)
	}
}

func TestTextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Text(ctx, Payload{Data: []byte("x")}, "")
	if !errors.Is(err, fault.KindRead) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want KindRead wrapping context.Canceled", err)
	}
}

type manifest struct {
	Name    string   `json:"name"`
	Version int      `json:"version"`
	Tags    []string `json:"tags"`
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	p := Payload{Data: []byte(`{"name":"blobkit","version":2,"tags":["a","b"]}`), ContentType: "application/json"}
	got, err := ParseJSON[manifest](context.Background(), p)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Name != "blobkit" || got.Version != 2 || len(got.Tags) != 2 {
		t.Errorf("ParseJSON = %+v", got)
	}

	generic, err := ParseJSON[map[string]any](context.Background(), p)
	if err != nil {
		t.Fatalf("ParseJSON[map]: %v", err)
	}
	if generic["name"] != "blobkit" {
		t.Errorf("generic[name] = %v", generic["name"])
	}
}

func TestParseJSONSyntaxError(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`{"name":`, `{name: 1}`, ``, `{"version":"two"}`} {
		_, err := ParseJSON[manifest](context.Background(), Payload{Data: []byte(input)})
		if !errors.Is(err, fault.KindJSONSyntax) {
			t.Errorf("ParseJSON(%q) error = %v, want KindJSONSyntax", input, err)
		}
		if errors.Is(err, fault.KindRead) {
			t.Errorf("ParseJSON(%q) reported as read failure", input)
		}
	}
}

func TestParseJSONC(t *testing.T) {
	t.Parallel()

	input := `{
		// the package name
		"name": "blobkit",
		/* bumped on release */
		"version": 3,
		"tags": ["x",],
	}`
	got, err := ParseJSONC[manifest](context.Background(), Payload{Data: []byte(input)})
	if err != nil {
		t.Fatalf("ParseJSONC: %v", err)
	}
	if got.Name != "blobkit" || got.Version != 3 || len(got.Tags) != 1 {
		t.Errorf("ParseJSONC = %+v", got)
	}

	if _, err := ParseJSON[manifest](context.Background(), Payload{Data: []byte(input)}); !errors.Is(err, fault.KindJSONSyntax) {
		t.Errorf("strict ParseJSON accepted comments: %v", err)
	}
}
