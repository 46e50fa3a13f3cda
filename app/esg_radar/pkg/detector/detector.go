package detector

import (
	"context"
	"strings"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/lexicon"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment"
)

// SensitivityThreshold 负面程度必须严格大于该值才记为风险
const SensitivityThreshold = 0.1

// Detector 句子级风险检测：关键词命中后再用情感评分过滤
type Detector struct {
	lexicon *lexicon.Lexicon
	scorer  sentiment.Scorer
}

// New 创建检测器，lexicon 与 scorer 在生命周期内只读
func New(lex *lexicon.Lexicon, scorer sentiment.Scorer) *Detector {
	return &Detector{lexicon: lex, scorer: scorer}
}

// Clean 将换行替换为空格并去除首尾空白
func Clean(sentence string) string {
	sentence = strings.ReplaceAll(sentence, "\r\n", " ")
	sentence = strings.ReplaceAll(sentence, "\n", " ")
	sentence = strings.ReplaceAll(sentence, "\r", " ")
	return strings.TrimSpace(sentence)
}

// DetectSentence 检测单个句子，每个句子至多产生一个 Finding。
// 第一个命中的关键词决定归属，情感评分使用原始大小写的句子。
func (d *Detector) DetectSentence(ctx context.Context, sentence string) (model.Finding, bool) {
	sentence = Clean(sentence)
	if sentence == "" {
		return model.Finding{}, false
	}

	category, keyword, ok := d.lexicon.Match(strings.ToLower(sentence))
	if !ok {
		return model.Finding{}, false
	}

	negativity := d.scorer.Negativity(ctx, sentence)
	if negativity <= SensitivityThreshold {
		return model.Finding{}, false
	}

	return model.Finding{
		Category:   category,
		Keyword:    keyword,
		Negativity: negativity,
		Sentence:   sentence,
	}, true
}

// Detect 按句子顺序检测，返回的 Finding 与句子顺序一致。
// ctx 取消时停止并返回 ctx 的错误。
func (d *Detector) Detect(ctx context.Context, sentences []string) ([]model.Finding, error) {
	findings := make([]model.Finding, 0)
	for _, s := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f, ok := d.DetectSentence(ctx, s); ok {
			findings = append(findings, f)
		}
	}
	return findings, nil
}
