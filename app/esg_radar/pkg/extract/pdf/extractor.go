package pdf

import (
	"context"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
)

// Extractor 逐页提取 PDF 纯文本，页之间检查 ctx 以便超时中断
type Extractor struct{}

// NewExtractor 创建 PDF 提取器
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Ensure Extractor implements extract.Extractor
var _ extract.Extractor = (*Extractor)(nil)

// Extract 提取全部页面文本，仅含图片的扫描件返回空字符串
func (e *Extractor) Extract(ctx context.Context, path string) (text string, err error) {
	// 解析器遇到损坏文件可能 panic，统一转为提取失败
	defer func() {
		if r := recover(); r != nil {
			text, err = "", extract.Failed(path, fmt.Errorf("malformed pdf: %v", r))
		}
	}()

	f, r, err := pdflib.Open(path)
	if err != nil {
		return "", extract.Failed(path, err)
	}
	defer f.Close()

	var sb strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", extract.Failed(path, fmt.Errorf("page %d: %w", i, err))
		}
		sb.WriteString(content)
	}
	return sb.String(), nil
}
