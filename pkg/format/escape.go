package format

import (
	"regexp"
	"strconv"
)

var escapedByte = regexp.MustCompile(`_[0-9a-f]{2}`)

// Unescape reverses the escaping used for configuration tree keys, where
// any byte outside [A-Za-z0-9_] is written as "_" followed by two lower case
// hex digits ("_2f" for "/").
func Unescape(key string) string {
	return escapedByte.ReplaceAllStringFunc(key, func(m string) string {
		b, err := strconv.ParseUint(m[1:], 16, 8)
		if err != nil {
			return m
		}
		return string([]byte{byte(b)})
	})
}
