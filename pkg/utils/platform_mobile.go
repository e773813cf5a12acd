//go:build mobile

package utils

// IsMobile 移动端构建恒为 true，不读取 MobileEmulateEnv
func IsMobile() bool {
	return true
}
