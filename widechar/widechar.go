// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package widechar handles the wide string shapes a spreadsheet reader
// meets on disk: NUL terminated rune buffers and UTF-16 code unit
// sequences (windows wchar_t, BIFF8 unicode string records).
package widechar

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// ErrOddLength reports a UTF-16 byte buffer whose length is not a
// multiple of the code unit size.
var ErrOddLength = errors.New("utf16 buffer has odd length")

// ByteOrder selects the code unit byte order of a UTF-16 buffer.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// TrimNul cuts src at the first wide NUL, the termination convention
// of platform wide strings. src without a NUL is returned unchanged.
func TrimNul(src []rune) []rune {
	for i, r := range src {
		if r == 0 {
			return src[:i]
		}
	}
	return src
}

// DecodeUTF16 converts UTF-16 encoded bytes to runes, combining
// surrogate pairs. Unpaired surrogates become U+FFFD, per the utf16
// package contract.
func DecodeUTF16(b []byte, order ByteOrder) ([]rune, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(b))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		if order == LittleEndian {
			units[i] = uint16(b[i*2]) | uint16(b[i*2+1])<<8
		} else {
			units[i] = uint16(b[i*2])<<8 | uint16(b[i*2+1])
		}
	}
	return utf16.Decode(units), nil
}

// DecodeUTF16LE converts little endian UTF-16 bytes, the layout of
// windows wide strings and BIFF8 high-byte unicode records.
func DecodeUTF16LE(b []byte) ([]rune, error) {
	return DecodeUTF16(b, LittleEndian)
}

// EncodeUTF16LE converts a UTF-8 string to little endian UTF-16 bytes,
// emitting surrogate pairs for supplementary plane runes.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, len(units)*2)
	for i, u := range units {
		b[i*2] = byte(u)
		b[i*2+1] = byte(u >> 8)
	}
	return b
}

// String converts a wide buffer to a UTF-8 string, honoring NUL
// termination.
func String(src []rune) string {
	return string(TrimNul(src))
}

// Runes converts a UTF-8 string to a wide buffer without a
// terminating NUL.
func Runes(s string) []rune {
	return []rune(s)
}

// Width returns the number of terminal cells the string occupies,
// counting grapheme clusters rather than runes. Decoded cell text is
// measured with this before column layout.
func Width(s string) int {
	return uniseg.StringWidth(s)
}
