// Copyright 2023~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package locale

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/ericwq/wlocale/codepage"
	"golang.org/x/text/encoding"
)

// locale categories, mirroring the classic setlocale interface. This
// package keeps one ambient state for all of them: only the character
// classification part matters for conversion, so every category
// behaves as LC_ALL here.
const (
	LC_ALL = iota
	LC_CTYPE
	LC_NUMERIC
	LC_TIME
	LC_COLLATE
	LC_MONETARY
	LC_MESSAGES
)

type localeState struct {
	name    string
	charset string
	enc     encoding.Encoding
}

// ambient is the emulated process locale, the state the fallback
// conversion path swaps. Everything touching it holds the mutex, so
// the swap window of a fallback conversion is never observable from
// another Setlocale or LocaleCharset call.
var ambient = struct {
	sync.Mutex
	current localeState
}{current: cLocale()}

func cLocale() localeState {
	enc, _ := codepage.ByName("US-ASCII")
	return localeState{name: "C", charset: "US-ASCII", enc: enc}
}

type localeVar struct {
	name  string
	value string
}

func (lv *localeVar) String() string {
	if lv.name == "" {
		return "[no charset variables]"
	}
	return lv.name + "=" + lv.value
}

// GetCtype reports which environment variable decides the character
// classification locale, checking LC_ALL, LC_CTYPE then LANG.
func GetCtype() localeVar {
	if all := os.Getenv("LC_ALL"); all != "" {
		return localeVar{"LC_ALL", all}
	} else if ctype := os.Getenv("LC_CTYPE"); ctype != "" {
		return localeVar{"LC_CTYPE", ctype}
	} else if lang := os.Getenv("LANG"); lang != "" {
		return localeVar{"LANG", lang}
	}

	return localeVar{"", ""}
}

/*
Setlocale installs name as the ambient locale and returns the
installed name.

An empty name resolves from the environment (GetCtype order), falling
back to the platform default when no variable is set. "C" and "POSIX"
select the US-ASCII locale.

If the name's charset cannot be resolved the ambient locale is
unchanged and Setlocale returns "", the setlocale(3) contract.
*/
func Setlocale(category int, name string) string {
	ambient.Lock()
	defer ambient.Unlock()

	if name == "" {
		name = GetCtype().value
		if name == "" {
			name = systemDefaultLocale()
		}
	}

	st, err := makeState(name)
	if err != nil {
		return ""
	}
	ambient.current = st
	return st.name
}

// makeState resolves a locale name to an installable state.
func makeState(name string) (localeState, error) {
	if name == "C" || name == "POSIX" {
		return cLocale(), nil
	}
	enc, charset, err := resolveLocaleName(name)
	if err != nil {
		return localeState{}, err
	}
	return localeState{name: name, charset: charset, enc: enc}, nil
}

// resolveLocaleName resolves the charset part of a locale name, such
// as "C.UTF-8", "zh_CN.GB18030", ".65001" or a bare "UTF-8", to its
// encoding and canonical charset name.
func resolveLocaleName(name string) (encoding.Encoding, string, error) {
	cs := extractCharset(name)
	var (
		id  uint16
		err error
	)
	if n, perr := strconv.ParseUint(cs, 10, 16); perr == nil {
		// windows style code page identifier
		id = uint16(n)
	} else if id, err = codepage.IDByName(cs); err != nil {
		return nil, "", err
	}
	enc, err := codepage.ByID(id)
	if err != nil {
		return nil, "", err
	}
	return enc, codepage.Name(id), nil
}

// extractCharset returns the charset component of a locale name: the
// part after the dot, or the whole name when there is none.
func extractCharset(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// LocaleCharset returns the charset name of the ambient locale, the
// CODESET answer.
func LocaleCharset() string {
	ambient.Lock()
	defer ambient.Unlock()
	return ambient.current.charset
}

// IsUtf8Locale returns true if the ambient locale charset is UTF-8.
func IsUtf8Locale() bool {
	cs := LocaleCharset()

	return strings.Compare(strings.ToLower(cs), "utf-8") == 0
}

// SetNativeLocale installs the locale requested by the environment
// and returns its name, printing a hint when the request cannot be
// satisfied.
func SetNativeLocale() (ret string) {
	ret = Setlocale(LC_ALL, "")
	if ret == "" { // cognizant of the locale environment variable
		ctype := GetCtype()
		fmt.Printf("The locale requested by %s isn't available here.\n", ctype.String())
		if ctype.name != "" {
			fmt.Printf("Running 'locale-gen %s' may be necessary.\n", ctype.value)
		}
	}
	return
}

// ClearLocaleVariables unsets the locale environment family.
func ClearLocaleVariables() {
	list := []string{
		"LANG", "LANGUAGE", "LC_CTYPE", "LC_NUMERIC", "LC_TIME", "LC_COLLATE",
		"LC_MONETARY", "LC_MESSAGES", "LC_PAPER", "LC_NAME", "LC_ADDRESS",
		"LC_TELEPHONE", "LC_MEASUREMENT", "LC_IDENTIFICATION", "LC_ALL",
	}
	for _, v := range list {
		os.Unsetenv(v)
	}
}

// convertViaAmbient is the fallback for platforms without a native
// locale-scoped conversion: install lc as the ambient locale, convert
// through it, restore the previous one. The whole swap runs under the
// ambient mutex, so sequential conversions always leave the ambient
// locale as they found it.
func convertViaAmbient(dst []byte, src []rune, lc *Locale) (int, error) {
	ambient.Lock()
	defer ambient.Unlock()

	saved := ambient.current
	ambient.current = localeState{name: lc.name, charset: lc.charset, enc: lc.enc}
	n, err := encodeWide(dst, src, ambient.current.enc)
	ambient.current = saved
	return n, err
}
