package vader

import (
	"context"

	"github.com/jonreiter/govader"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment"
)

// Scorer 基于 VADER 词典规则的离线情感评分，使用其 neg 分量作为负面程度
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer 创建 VADER 评分器
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Ensure Scorer implements sentiment.Scorer
var _ sentiment.Scorer = (*Scorer)(nil)

// Negativity 返回句子的负面程度
func (s *Scorer) Negativity(_ context.Context, sentence string) float64 {
	return sentiment.Clamp(s.analyzer.PolarityScores(sentence).Negative)
}
