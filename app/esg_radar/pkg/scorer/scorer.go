package scorer

import (
	"math"
	"strconv"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// 评分公式参数，修改会改变评分口径
const (
	SeverityWeight  = 6.0
	FrequencyWeight = 0.4
	MaxScore        = 10.0
	// PerSentences 频率按每千句归一化
	PerSentences = 1000.0
)

// Calculate 根据风险列表与文档总句数计算评分。
// 无风险或总句数为 0 时返回全零。
func Calculate(findings []model.Finding, totalSentences int) model.RiskScore {
	if len(findings) == 0 || totalSentences <= 0 {
		return model.RiskScore{}
	}

	var total float64
	for _, f := range findings {
		total += f.Negativity
	}
	severity := total / float64(len(findings))
	frequency := float64(len(findings)) / float64(totalSentences) * PerSentences

	raw := severity*SeverityWeight + frequency*FrequencyWeight
	score := math.Min(Round(raw, 1), MaxScore)

	return model.RiskScore{
		Score:     math.Max(score, 0),
		Severity:  Round(severity, 2),
		Frequency: Round(frequency, 2),
	}
}

// Round 按二进制精确值舍入到指定小数位，恰好一半时取偶数
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
