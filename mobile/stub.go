//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口包
//
// 桌面构建只编译本文件；挂件的移动端绑定在 mobile.go/embed.go 中，
// 需要 -tags mobile。
package mobile

// Dummy 让桌面构建下的 mobile 包非空
func Dummy() {}
