package utils

// RandomSource 随机数来源
//
// *math/rand.Rand 满足该接口；测试可以传入固定种子或脚本化的序列，
// 让随机搜索和粒子参数可复现。
type RandomSource interface {
	// Float64 返回 [0, 1) 内的随机数
	Float64() float64
}

// RandomRange 返回 [min, min+span) 内的随机数
func RandomRange(rng RandomSource, min, span float64) float64 {
	return min + rng.Float64()*span
}

// RandomSpread 返回以 0 为中心、总宽度为 span 的随机偏移，即 [-span/2, span/2)
func RandomSpread(rng RandomSource, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}
