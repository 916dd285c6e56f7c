// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepage

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
)

func TestByID(t *testing.T) {
	tc := []struct {
		label string
		id    uint16
		ok    bool
	}{
		{"utf-8", 65001, true},
		{"shift_jis", 932, true},
		{"gbk", 936, true},
		{"utf-16le", 1200, true},
		{"us-ascii", 20127, true},
		{"euc-jp", 20932, true},
		{"unregistered", 12345, false},
	}

	for _, v := range tc {
		enc, err := ByID(v.id)
		if v.ok && (enc == nil || err != nil) {
			t.Errorf("#test %q ByID(%d) expect an encoding, got error %q\n", v.label, v.id, err)
		}
		if !v.ok {
			if !errors.Is(err, ErrUnknownCodepage) {
				t.Errorf("#test %q ByID(%d) expect %q got %q\n", v.label, v.id, ErrUnknownCodepage, err)
			}
		}
	}
}

func TestByName(t *testing.T) {
	tc := []struct {
		label string
		name  string
		id    uint16
		ok    bool
	}{
		{"canonical name", "UTF-8", 65001, true},
		{"lower case", "utf-8", 65001, true},
		{"no punctuation", "utf8", 65001, true},
		{"underscore name", "Shift_JIS", 932, true},
		{"alias", "gb2312", 936, true},
		{"latin alias", "latin1", 28591, true},
		{"codeset answer", "ANSI_X3.4-1968", 20127, true},
		{"unknown", "ow", 0, false},
		{"empty", "", 0, false},
	}

	for _, v := range tc {
		id, err := IDByName(v.name)
		if v.ok {
			if err != nil {
				t.Errorf("#test %q IDByName(%q) expect no error, got %q\n", v.label, v.name, err)
				continue
			}
			if id != v.id {
				t.Errorf("#test %q IDByName(%q) expect %d got %d\n", v.label, v.name, v.id, id)
			}
			if enc, err := ByName(v.name); enc == nil || err != nil {
				t.Errorf("#test %q ByName(%q) expect an encoding, got error %q\n", v.label, v.name, err)
			}
		} else if !errors.Is(err, ErrUnknownCharset) {
			t.Errorf("#test %q IDByName(%q) expect %q got %q\n", v.label, v.name, ErrUnknownCharset, err)
		}
	}
}

func TestDecode(t *testing.T) {
	tc := []struct {
		label  string
		id     uint16
		src    []byte
		expect string
	}{
		{"windows-1252 accents", 1252, []byte{0x63, 0x61, 0x66, 0xE9}, "café"},
		{"gbk hanzi", 936, []byte{0xCA, 0xC0, 0xBD, 0xE7}, "世界"},
		{"utf-16le", 1200, []byte{0x16, 0x4E, 0x4C, 0x75}, "世界"},
		{"koi8-r cyrillic", 20866, []byte{0xCD, 0xC9, 0xD2}, "мир"},
		{"utf-8 passthrough", 65001, []byte("plain"), "plain"},
	}

	for _, v := range tc {
		got, err := Decode(v.id, v.src)
		if err != nil {
			t.Errorf("#test %q Decode() expect no error, got %q\n", v.label, err)
			continue
		}
		if got != v.expect {
			t.Errorf("#test %q Decode() expect %q got %q\n", v.label, v.expect, got)
		}
	}
}

func TestDecodeUnknownCodepage(t *testing.T) {
	if _, err := Decode(12345, []byte("x")); !errors.Is(err, ErrUnknownCodepage) {
		t.Errorf("#test Decode() expect %q got %q\n", ErrUnknownCodepage, err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tc := []struct {
		label string
		id    uint16
		text  string
	}{
		{"windows-1252", 1252, "café"},
		{"gb18030", 54936, "世界"},
		{"big5", 950, "世界"},
	}

	for _, v := range tc {
		b, err := Encode(v.id, v.text)
		if err != nil {
			t.Errorf("#test %q Encode() expect no error, got %q\n", v.label, err)
			continue
		}
		got, err := Decode(v.id, b)
		if err != nil {
			t.Errorf("#test %q Decode() expect no error, got %q\n", v.label, err)
			continue
		}
		if got != v.text {
			t.Errorf("#test %q round trip expect %q got %q\n", v.label, v.text, got)
		}
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	// hanzi has no windows-1252 representation
	if _, err := Encode(1252, "世"); err == nil {
		t.Error("#test Encode() expect an error, got nil")
	}
}

func TestNewReader(t *testing.T) {
	src := bytes.NewReader([]byte{0xCA, 0xC0, 0xBD, 0xE7})
	reader, err := NewReader(936, src)
	if err != nil {
		t.Fatalf("#test NewReader() expect no error, got %q\n", err)
	}

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("#test read expect no error, got %q\n", err)
	}
	if string(got) != "世界" {
		t.Errorf("#test read expect %q got %q\n", "世界", got)
	}
}

func TestName(t *testing.T) {
	tc := []struct {
		label  string
		id     uint16
		expect string
	}{
		{"utf-8", 65001, "UTF-8"},
		{"ascii", 20127, "US-ASCII"},
		{"euc-jp", 20932, "EUC-JP"},
		{"unregistered", 12345, ""},
	}

	for _, v := range tc {
		if got := Name(v.id); got != v.expect {
			t.Errorf("#test %q Name(%d) expect %q got %q\n", v.label, v.id, v.expect, got)
		}
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	if len(ids) == 0 {
		t.Fatal("#test IDs() expect a non-empty list")
	}
	if !sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }) {
		t.Errorf("#test IDs() expect ascending order, got %v\n", ids)
	}
	for _, id := range ids {
		if Name(id) == "" {
			t.Errorf("#test IDs() expect a name for %d\n", id)
		}
	}
}

func TestNormalize(t *testing.T) {
	tc := []struct {
		label  string
		name   string
		expect string
	}{
		{"mixed case and dash", "Windows-1252", "windows1252"},
		{"dots and underscores", "ANSI_X3.4-1968", "ansix341968"},
		{"spaces", "UTF 8", "utf8"},
	}

	for _, v := range tc {
		if got := normalize(v.name); got != v.expect {
			t.Errorf("#test %q normalize(%q) expect %q got %q\n", v.label, v.name, v.expect, got)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	// a truncated gbk sequence decodes to the replacement rune rather
	// than failing, per the x/text decoder contract
	got, err := Decode(936, []byte{0xCA})
	if err != nil {
		t.Fatalf("#test Decode() expect no error, got %q\n", err)
	}
	if !strings.Contains(got, "�") {
		t.Errorf("#test Decode() expect replacement rune, got %q\n", got)
	}
}
