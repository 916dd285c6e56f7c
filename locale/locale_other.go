// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !windows && !darwin

package locale

// glibc and musl both ship the C.UTF-8 locale.
const utf8LocaleName = "C.UTF-8"

// no locale scoped conversion primitive here: WideToMultibyte swaps
// the supplied locale in as the ambient one for the duration of the
// call and restores the previous one before returning.
const hasNativeWideConv = false

// setlocale(LC_ALL, "") with no locale variables set selects the C
// locale.
func systemDefaultLocale() string {
	return "C"
}
