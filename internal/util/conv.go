package util

import (
	"strconv"
	"strings"
)

// EmailDomain 自动注册合成邮箱时使用的固定域名
const EmailDomain = "lumina.edu"

// MustParseUint 将字符串转换为无符号整数，解析失败时返回 0
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// SynthesizeEmail builds a deterministic email from a display name:
// lowercased, whitespace runs collapsed to ".", fixed domain appended.
// "Jane Doe" -> "jane.doe@lumina.edu".
func SynthesizeEmail(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), ".")
	return slug + "@" + EmailDomain
}
