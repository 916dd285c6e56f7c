// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package locale provides locale handles pinned to UTF-8 and
// wide-character to multibyte conversion under a supplied handle
// rather than the ambient locale. The platform policy for naming the
// UTF-8 locale differs per OS and is selected at compile time:
// windows asks for code page ".65001", darwin for "UTF-8", everything
// else for "C.UTF-8".
package locale

import (
	"errors"

	"github.com/ericwq/wlocale/widechar"
	"golang.org/x/text/encoding"
)

// Version is reported by the library's version query.
const Version = "0.1.0"

// HaveCharsetConv reports whether conversion between charsets other
// than UTF-8 is compiled in. Callers gate code page translation of
// string records on it.
const HaveCharsetConv = true

// ErrNilLocale reports a conversion attempted with a nil or closed
// locale handle.
var ErrNilLocale = errors.New("nil locale")

// Locale is an opaque handle for a character classification locale.
// A handle is owned by one logical owner at a time; concurrent use of
// the same handle is not synchronized.
type Locale struct {
	name    string
	charset string
	enc     encoding.Encoding
}

// New creates a locale handle configured for UTF-8 under the platform
// naming policy. It returns nil when the name cannot be resolved; no
// alternate name is tried, callers decide the failure policy.
func New() *Locale {
	enc, charset, err := resolveLocaleName(utf8LocaleName)
	if err != nil {
		return nil
	}
	return &Locale{name: utf8LocaleName, charset: charset, enc: enc}
}

// NewNamed creates a handle for an arbitrary locale name, such as
// "zh_CN.GB18030", "en_US.windows-1252" or ".936". It returns nil
// when the name cannot be resolved.
func NewNamed(name string) *Locale {
	enc, charset, err := resolveLocaleName(name)
	if err != nil {
		return nil
	}
	return &Locale{name: name, charset: charset, enc: enc}
}

// Name returns the locale name the handle was created with, empty for
// a nil handle.
func (l *Locale) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Charset returns the canonical charset name of the handle's
// encoding, empty for a nil handle.
func (l *Locale) Charset() string {
	if l == nil {
		return ""
	}
	return l.charset
}

// Close releases the handle. Safe on a nil handle and safe to call
// more than once.
func (l *Locale) Close() {
	if l == nil {
		return
	}
	l.enc = nil
}

// GetVersion returns the library version string.
func GetVersion() string {
	return Version
}

// WideToMultibyte converts a wide string into dst under the supplied
// locale's encoding instead of the ambient one. src is treated as NUL
// terminated: conversion stops before the first rune 0. It returns
// the number of bytes written, with no terminator written or counted.
//
// Errors pass through from the wrapped encoder: an unrepresentable
// character fails with the encoder's repertoire error, a dst shorter
// than the encoded length fails with transform.ErrShortDst after
// filling what fits. A nil or closed handle fails with ErrNilLocale.
//
// On platforms without a native locale-scoped conversion the call
// temporarily installs lc as the ambient locale and restores the
// previous one before returning; the swap is serialized with all
// other ambient locale operations in this package, but callers must
// not expect the ambient locale to be observable mid-call elsewhere.
func WideToMultibyte(dst []byte, src []rune, lc *Locale) (int, error) {
	if lc == nil || lc.enc == nil {
		return 0, ErrNilLocale
	}
	src = widechar.TrimNul(src)
	if hasNativeWideConv {
		return encodeWide(dst, src, lc.enc)
	}
	return convertViaAmbient(dst, src, lc)
}

// encodeWide runs one encoder pass over the whole wide string. With
// atEOF set a single pass either completes or fails with the
// encoder's truncation or repertoire error.
func encodeWide(dst []byte, src []rune, enc encoding.Encoding) (int, error) {
	nDst, _, err := enc.NewEncoder().Transform(dst, []byte(string(src)), true)
	return nDst, err
}
