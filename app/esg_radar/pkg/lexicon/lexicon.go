package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// defaultLexicon 编译期嵌入的默认关键词表
//
//go:embed esg_lexicon.yaml
var defaultLexicon []byte

// Entry 单个类别及其有序关键词
type Entry struct {
	Category model.Category `yaml:"name"`
	Keywords []string       `yaml:"keywords"`
}

type file struct {
	Categories []Entry `yaml:"categories"`
}

// Lexicon 类别到关键词的不可变映射，构造后只读，可在多个 goroutine 间共享
type Lexicon struct {
	entries []Entry
}

// Default 解析内嵌的默认关键词表
func Default() (*Lexicon, error) {
	return Parse(defaultLexicon)
}

// LoadFile 从外部 YAML 文件加载关键词表
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 格式的关键词表
func Parse(data []byte) (*Lexicon, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexicon: %w", err)
	}
	return New(f.Categories)
}

// New 校验并构造关键词表。
// 三个类别必须齐全且关键词非空；条目按 Environmental、Social、Governance 的固定顺序重排，
// 类别内保留声明顺序。关键词统一转小写并去除首尾空白。
func New(entries []Entry) (*Lexicon, error) {
	byCategory := make(map[model.Category][]string, len(entries))
	for _, e := range entries {
		if !e.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q", e.Category)
		}
		if _, dup := byCategory[e.Category]; dup {
			return nil, fmt.Errorf("duplicate category %q", e.Category)
		}
		keywords := make([]string, 0, len(e.Keywords))
		for _, kw := range e.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return nil, fmt.Errorf("empty keyword in category %q", e.Category)
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", e.Category)
		}
		byCategory[e.Category] = keywords
	}

	lex := &Lexicon{}
	for _, c := range model.Categories() {
		keywords, ok := byCategory[c]
		if !ok {
			return nil, fmt.Errorf("missing category %q", c)
		}
		lex.entries = append(lex.entries, Entry{Category: c, Keywords: keywords})
	}
	return lex, nil
}

// Match 在已转小写的句子中按固定顺序查找第一个出现的关键词。
// 这是子串包含判断，不做词边界检查，"labor" 也会命中 "laboratory"。
func (l *Lexicon) Match(lowered string) (model.Category, string, bool) {
	for _, e := range l.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(lowered, kw) {
				return e.Category, kw, true
			}
		}
	}
	return "", "", false
}

// Entries 返回关键词表的副本
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = Entry{Category: e.Category, Keywords: append([]string(nil), e.Keywords...)}
	}
	return out
}

// Keywords 返回指定类别的关键词副本
func (l *Lexicon) Keywords(c model.Category) []string {
	for _, e := range l.entries {
		if e.Category == c {
			return append([]string(nil), e.Keywords...)
		}
	}
	return nil
}
