package xiplit

import "strings"

const (
	// ipv6Groups 是完整 IPv6 地址的 16 位分组数。
	ipv6Groups = 8
	// ipv6GroupsWithIPv4Tail 是带 IPv4 尾部时剩余的冒号分组数，尾部占两组。
	ipv6GroupsWithIPv4Tail = 6
	// maxIPv6Len 是最长合法字面量
	// "ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255" 的长度。
	maxIPv6Len = 45
)

// isIPv6 按冒号十六进制文法校验 s。
//
// 文法要点：
//   - "::" 本身合法
//   - 按 ':' 拆分；至少两段且最后一段是合法 IPv4 字面量时，将其作为尾部摘下，
//     剩余分组期望值由 8 变为 6
//   - 每个非空段为 0~4 位十六进制数字（大小写不敏感）
//   - 空段表示压缩点；最多一个压缩点。开头的 "::" 与结尾的 "::" 各产生两个相邻空段，
//     仍只算一个压缩点；单独的开头或结尾 ':'、以及 ":::" 一律非法
//   - 无压缩时显式分组数必须等于期望值，有压缩时必须严格小于期望值
func isIPv6(s string) bool {
	if s == "::" {
		return true
	}
	if len(s) < 2 || len(s) > maxIPv6Len {
		return false
	}

	chunks := strings.Split(s, ":")
	expected := ipv6Groups
	hasTail := false
	if last := len(chunks) - 1; last >= 1 && isIPv4(chunks[last]) {
		chunks = chunks[:last]
		expected = ipv6GroupsWithIPv4Tail
		hasTail = true
	}

	groups, compressions := 0, 0
	for i := 0; i < len(chunks); i++ {
		if chunks[i] != "" {
			if !isHexGroup(chunks[i]) {
				return false
			}
			groups++
			continue
		}
		start := i
		for i+1 < len(chunks) && chunks[i+1] == "" {
			i++
		}
		if !isCompression(start, i, len(chunks), hasTail) {
			return false
		}
		compressions++
	}

	switch compressions {
	case 0:
		return groups == expected
	case 1:
		return groups < expected
	default:
		return false
	}
}

// isCompression 判断 chunks[start..end] 这一段连续空段是否构成合法的 "::"。
//
// 拆分后 "::" 在开头或结尾表现为两个空段，在中间表现为一个空段。
// 带 IPv4 尾部时，最后一个冒号分组之后紧跟尾部，不算结尾。
func isCompression(start, end, n int, hasTail bool) bool {
	length := end - start + 1
	atStart := start == 0
	atEnd := end == n-1 && !hasTail
	switch {
	case atStart && atEnd:
		// 全部为空段：只有 "::" 合法，已在入口处理
		return false
	case atStart, atEnd:
		return length == 2
	default:
		return length == 1
	}
}

// isHexGroup 报告 s 是否为 1~4 位十六进制数字。
func isHexGroup(s string) bool {
	if len(s) == 0 || len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
