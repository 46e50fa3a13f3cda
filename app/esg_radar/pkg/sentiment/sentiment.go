package sentiment

import "context"

// Scorer 定义句子负面情感评分能力。
// 实现必须是全函数：对任意句子返回 [0,1] 之间的负面程度，且同一句子的结果稳定。
type Scorer interface {
	Negativity(ctx context.Context, sentence string) float64
}

// ScorerFunc 允许将普通函数用作 Scorer
type ScorerFunc func(ctx context.Context, sentence string) float64

// Negativity 实现 Scorer 接口
func (f ScorerFunc) Negativity(ctx context.Context, sentence string) float64 {
	return f(ctx, sentence)
}

// Clamp 将分值限制在 [0,1]
func Clamp(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
