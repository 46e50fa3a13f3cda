package html

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
)

// Extractor 使用 readability 提取 HTML 披露文件的正文文本
type Extractor struct{}

// NewExtractor 创建 HTML 提取器
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Ensure Extractor implements extract.Extractor
var _ extract.Extractor = (*Extractor)(nil)

// Extract 返回正文纯文本
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", extract.Failed(path, err)
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", extract.Failed(path, err)
	}
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}

	article, err := readability.FromReader(f, pageURL)
	if err != nil {
		return "", extract.Failed(path, err)
	}
	return article.TextContent, nil
}
