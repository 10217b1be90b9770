package xiplit

// IPv4 点分十进制字面量的长度边界："0.0.0.0" 到 "255.255.255.255"。
const (
	minIPv4Len = 7
	maxIPv4Len = 15
)

// isIPv4 按严格点分十进制文法校验 s：
//   - 恰好 4 段，以 '.' 分隔
//   - 每段 1~3 位 ASCII 数字，数值 0~255
//   - 多位数段不得以 '0' 开头（拒绝 "016" 这类八进制歧义写法）
//   - 不允许空白、NUL、尾随 '.' 或多余段
func isIPv4(s string) bool {
	if len(s) < minIPv4Len || len(s) > maxIPv4Len {
		return false
	}
	octets := 0
	i := 0
	for {
		j := i
		v := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			v = v*10 + int(s[j]-'0')
			j++
		}
		n := j - i
		if n == 0 || n > 3 || v > 255 {
			return false
		}
		if n > 1 && s[i] == '0' {
			return false
		}
		octets++
		if j == len(s) {
			return octets == 4
		}
		if s[j] != '.' || octets == 4 {
			return false
		}
		i = j + 1
	}
}
