package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter 将文档文本切分为有序的句子序列。
// 实现必须是确定性的，句子数量参与风险频率的归一化，部署后不应更换实现。
type Segmenter interface {
	Segment(text string) []string
}

// Punkt 基于 Punkt 无监督模型的英文分句，与 NLTK sent_tokenize 使用同一套训练数据
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt 加载内置英文 Punkt 模型
func NewPunkt() (*Punkt, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &Punkt{tokenizer: tokenizer}, nil
}

// Ensure Punkt implements Segmenter
var _ Segmenter = (*Punkt)(nil)

// Segment 切分文本；空白文本返回零个句子
func (p *Punkt) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	tokens := p.tokenizer.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		out = append(out, s.Text)
	}
	return out
}

// Func 允许将普通函数用作 Segmenter
type Func func(text string) []string

// Segment 实现 Segmenter 接口
func (f Func) Segment(text string) []string {
	return f(text)
}
