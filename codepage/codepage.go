// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codepage maps windows code page identifiers and charset
// names to golang.org/x/text encodings. Spreadsheet files carry the
// code page of their string records (BIFF CODEPAGE record, CSV/DBF
// language drivers), this package turns those identifiers into working
// decoders so the rest of the library can produce UTF-8.
package codepage

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrUnknownCodepage = errors.New("unknown code page")
	ErrUnknownCharset  = errors.New("unknown charset name")
)

type entry struct {
	enc  encoding.Encoding
	name string
}

// code page id -> encoding. the id set follows the windows code page
// registry; 1200/1201 are the UTF-16 "code pages" BIFF8 uses for
// unicode string records.
var codepages = map[uint16]entry{
	437:   {charmap.CodePage437, "IBM437"},
	850:   {charmap.CodePage850, "IBM850"},
	852:   {charmap.CodePage852, "IBM852"},
	855:   {charmap.CodePage855, "IBM855"},
	858:   {charmap.CodePage858, "IBM858"},
	866:   {charmap.CodePage866, "IBM866"},
	874:   {charmap.Windows874, "windows-874"},
	932:   {japanese.ShiftJIS, "Shift_JIS"},
	936:   {simplifiedchinese.GBK, "GBK"},
	949:   {korean.EUCKR, "EUC-KR"},
	950:   {traditionalchinese.Big5, "Big5"},
	1200:  {unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "UTF-16LE"},
	1201:  {unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "UTF-16BE"},
	1250:  {charmap.Windows1250, "windows-1250"},
	1251:  {charmap.Windows1251, "windows-1251"},
	1252:  {charmap.Windows1252, "windows-1252"},
	1253:  {charmap.Windows1253, "windows-1253"},
	1254:  {charmap.Windows1254, "windows-1254"},
	1255:  {charmap.Windows1255, "windows-1255"},
	1256:  {charmap.Windows1256, "windows-1256"},
	1257:  {charmap.Windows1257, "windows-1257"},
	1258:  {charmap.Windows1258, "windows-1258"},
	10000: {charmap.Macintosh, "macintosh"},
	20866: {charmap.KOI8R, "KOI8-R"},
	21866: {charmap.KOI8U, "KOI8-U"},
	28591: {charmap.ISO8859_1, "ISO-8859-1"},
	28592: {charmap.ISO8859_2, "ISO-8859-2"},
	28593: {charmap.ISO8859_3, "ISO-8859-3"},
	28594: {charmap.ISO8859_4, "ISO-8859-4"},
	28595: {charmap.ISO8859_5, "ISO-8859-5"},
	28596: {charmap.ISO8859_6, "ISO-8859-6"},
	28597: {charmap.ISO8859_7, "ISO-8859-7"},
	28598: {charmap.ISO8859_8, "ISO-8859-8"},
	28599: {charmap.ISO8859_9, "ISO-8859-9"},
	28605: {charmap.ISO8859_15, "ISO-8859-15"},
	54936: {simplifiedchinese.GB18030, "GB18030"},
	65001: {unicode.UTF8, "UTF-8"},
}

// charset name aliases that do not normalize to a registry name, e.g.
// the names found in locale strings and CODESET answers.
var aliases = map[string]uint16{
	"ascii":       20127,
	"usascii":     20127,
	"ansix341968": 20127,
	"latin1":      28591,
	"latin2":      28592,
	"latin9":      28605,
	"sjis":        932,
	"eucjp":       20932,
	"gb2312":      936,
	"utf16":       1200,
	"ucs2":        1200,
	"macroman":    10000,
}

// ByID returns the encoding registered for a windows code page
// identifier, or ErrUnknownCodepage.
func ByID(id uint16) (encoding.Encoding, error) {
	switch id {
	case 20127:
		// US-ASCII has no dedicated x/text encoding; ISO-8859-1 is a
		// byte-transparent superset for the 7-bit range.
		return charmap.ISO8859_1, nil
	case 20932:
		return japanese.EUCJP, nil
	}
	e, ok := codepages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodepage, id)
	}
	return e.enc, nil
}

// ByName resolves a charset name such as "UTF-8", "gb18030" or
// "ISO_8859-1" to its encoding. Matching ignores case, '-' and '_'.
func ByName(name string) (encoding.Encoding, error) {
	id, err := IDByName(name)
	if err != nil {
		return nil, err
	}
	return ByID(id)
}

// IDByName resolves a charset name to its code page identifier, with
// the same matching rules as ByName.
func IDByName(name string) (uint16, error) {
	key := normalize(name)
	if key == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	if id, ok := aliases[key]; ok {
		return id, nil
	}
	for id, e := range codepages {
		if normalize(e.name) == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
}

// Name returns the preferred charset name of a code page, empty string
// for an unregistered one.
func Name(id uint16) string {
	if id == 20127 {
		return "US-ASCII"
	}
	if id == 20932 {
		return "EUC-JP"
	}
	if e, ok := codepages[id]; ok {
		return e.name
	}
	return ""
}

// IDs returns the registered code page identifiers in ascending order.
func IDs() []uint16 {
	ids := make([]uint16, 0, len(codepages))
	for id := range codepages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Decode converts bytes in the given code page to a UTF-8 string.
func Decode(id uint16, b []byte) (string, error) {
	enc, err := ByID(id)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts a UTF-8 string to bytes in the given code page. A
// rune outside the target repertoire fails with the encoder's error.
func Encode(id uint16, s string) ([]byte, error) {
	enc, err := ByID(id)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Bytes([]byte(s))
}

// NewReader wraps r so that reads yield UTF-8 decoded from the given
// code page.
func NewReader(id uint16, r io.Reader) (io.Reader, error) {
	enc, err := ByID(id)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		case r == '-' || r == '_' || r == '.' || r == ' ':
			// skip
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
