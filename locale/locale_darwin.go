// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build darwin

package locale

// darwin accepts the bare charset name as a locale name.
const utf8LocaleName = "UTF-8"

// darwin has a locale scoped conversion primitive, so the handle's
// encoder is called directly.
const hasNativeWideConv = true

// setlocale(LC_ALL, "") with no locale variables set selects the C
// locale.
func systemDefaultLocale() string {
	return "C"
}
