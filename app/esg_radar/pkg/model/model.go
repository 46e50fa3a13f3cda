package model

// Category ESG 风险类别
type Category string

const (
	Environmental Category = "Environmental"
	Social        Category = "Social"
	Governance    Category = "Governance"
)

// Categories 返回固定的类别遍历顺序，检测时按此顺序决出命中类别
func Categories() []Category {
	return []Category{Environmental, Social, Governance}
}

// Valid 判断是否为三个已知类别之一
func (c Category) Valid() bool {
	switch c {
	case Environmental, Social, Governance:
		return true
	default:
		return false
	}
}

// Finding 单条风险信号，对应文档中的一个句子
type Finding struct {
	Category   Category `json:"category"`
	Keyword    string   `json:"keyword"`
	Negativity float64  `json:"negativity_score"`  // 情感负面程度，取值 (0.1, 1]
	Sentence   string   `json:"sentence"`          // 原始大小写的句子
	Company    string   `json:"company,omitempty"` // 仅在批量导出时填充
}

// RiskScore 单个文档的聚合风险评分
type RiskScore struct {
	Score     float64 `json:"score"`     // 0-10，保留一位小数
	Severity  float64 `json:"severity"`  // 平均负面程度，保留两位小数
	Frequency float64 `json:"frequency"` // 每千句风险数，保留两位小数
}

// AnalysisResult 单文档分析结果
type AnalysisResult struct {
	OverallRiskScore      float64   `json:"overall_risk_score"`
	AverageSeverity       float64   `json:"average_severity"`
	NormalizedFrequency   float64   `json:"normalized_frequency"`
	TotalRisksFound       int       `json:"total_risks_found"`
	ReportLengthSentences int       `json:"report_length_sentences"`
	Findings              []Finding `json:"findings"`
}

// SummaryRow 批量导出汇总行，按 (公司, 类别) 分组
type SummaryRow struct {
	Company       string   `json:"company"`
	Category      Category `json:"category"`
	RiskCount     int      `json:"risk_count"`
	AvgNegativity float64  `json:"avg_negativity"`
}
