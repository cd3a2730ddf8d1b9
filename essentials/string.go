// Copyright (c) Jeevanandam M. (https://github.com/jeevatkm)
// aahframe.work/security source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package ess

import "strings"

// StringEmpty is empty string constant. Using `ess.StringEmpty` instead of "".
const StringEmpty = ""

// IsStrEmpty returns true if strings is empty otherwise false
func IsStrEmpty(v string) bool {
	return len(strings.TrimSpace(v)) == 0
}

// IsSameStrings method reports whether both slices hold the same strings,
// ignoring order and duplicates.
func IsSameStrings(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, found := as[v]; !found {
			return false
		}
		bs[v] = struct{}{}
	}
	return len(as) == len(bs)
}
