package corpus

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
)

// Labeler 根据文件名推断公司名称
type Labeler struct {
	aliases []config.CompanyAlias
}

// NewLabeler 创建公司标注器，别名按声明顺序匹配
func NewLabeler(aliases []config.CompanyAlias) *Labeler {
	normalized := make([]config.CompanyAlias, 0, len(aliases))
	for _, a := range aliases {
		match := make([]string, 0, len(a.Match))
		for _, m := range a.Match {
			if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
				match = append(match, m)
			}
		}
		normalized = append(normalized, config.CompanyAlias{Match: match, Name: a.Name})
	}
	return &Labeler{aliases: normalized}
}

// Label 返回文件名对应的公司名称。
// 先按别名表做不区分大小写的子串匹配；未命中时将文件名主干中的 _ 与 - 替换为空格并转为标题格式。
func (l *Labeler) Label(filename string) string {
	base := filepath.Base(filename)
	lowered := strings.ToLower(base)
	for _, a := range l.aliases {
		for _, m := range a.Match {
			if strings.Contains(lowered, m) {
				return a.Name
			}
		}
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	// Caser 有内部状态，不能跨 goroutine 共享
	return cases.Title(language.English).String(strings.Join(strings.Fields(stem), " "))
}
