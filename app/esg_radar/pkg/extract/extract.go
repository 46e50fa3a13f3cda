package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrExtractionFailed 文档无法读取或已损坏
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrUnsupported 没有为该扩展名注册提取器
	ErrUnsupported = fmt.Errorf("%w: unsupported document type", ErrExtractionFailed)
)

// Extractor 将文档路径转换为纯文本。
// 失败时返回的错误必须包装 ErrExtractionFailed；提取质量不做校验，乱码文本也可接受。
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Failed 将底层错误包装为提取失败
func Failed(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExtractionFailed, filepath.Base(path), err)
}

// Plain 直接读取纯文本文件
type Plain struct{}

// Ensure Plain implements Extractor
var _ Extractor = Plain{}

// Extract 读取文件全部内容
func (Plain) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Failed(path, err)
	}
	return string(data), nil
}

// Router 按文件扩展名分派到具体的提取器
type Router struct {
	byExt map[string]Extractor
}

// NewRouter 创建空路由
func NewRouter() *Router {
	return &Router{byExt: make(map[string]Extractor)}
}

// Register 为扩展名注册提取器，扩展名不区分大小写，需带点号，例如 ".pdf"
func (r *Router) Register(ext string, e Extractor) *Router {
	r.byExt[strings.ToLower(ext)] = e
	return r
}

// Lookup 返回扩展名对应的提取器
func (r *Router) Lookup(ext string) (Extractor, bool) {
	e, ok := r.byExt[strings.ToLower(ext)]
	return e, ok
}

// Supports 判断文件名是否有对应的提取器
func (r *Router) Supports(name string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Extensions 返回已注册的扩展名，按字典序
func (r *Router) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Ensure Router implements Extractor
var _ Extractor = (*Router)(nil)

// Extract 根据扩展名选择提取器
func (r *Router) Extract(ctx context.Context, path string) (string, error) {
	e, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
	return e.Extract(ctx, path)
}
