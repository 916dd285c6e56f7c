// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package locale

import (
	"fmt"
	"unsafe"

	"github.com/ericwq/wlocale/codepage"
	"golang.org/x/sys/windows"
)

// windows names locales by code page identifier; 65001 is CP_UTF8.
const utf8LocaleName = ".65001"

// windows has a locale scoped conversion primitive, so the handle's
// encoder is called directly.
const hasNativeWideConv = true

const localeNameMaxLength = 85 // LOCALE_NAME_MAX_LENGTH

var (
	kernel32                     = windows.NewLazySystemDLL("kernel32.dll")
	procGetUserDefaultLocaleName = kernel32.NewProc("GetUserDefaultLocaleName")
)

// systemDefaultLocale builds a locale name from the user default
// locale name and the active code page, consulted when the
// environment names no locale.
func systemDefaultLocale() string {
	cs := codepage.Name(uint16(windows.GetACP()))
	if cs == "" {
		return "C"
	}

	buf := make([]uint16, localeNameMaxLength)
	ret, _, _ := procGetUserDefaultLocaleName.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return "C"
	}
	return fmt.Sprintf("%s.%s", windows.UTF16ToString(buf), cs)
}
