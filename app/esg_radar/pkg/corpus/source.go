package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrSourceNotFound 文档目录不存在
var ErrSourceNotFound = errors.New("source directory not found")

// Document 待分析的单个文档
type Document struct {
	Name string // 文件名，不含目录
	Path string
}

// Source 提供一批待分析文档
type Source interface {
	Documents(ctx context.Context) ([]Document, error)
}

// DirSource 扫描单层目录中指定扩展名的文件，不递归
type DirSource struct {
	dir        string
	extensions map[string]struct{}
}

// Ensure DirSource implements Source
var _ Source = (*DirSource)(nil)

// NewDirSource 创建目录文档源，扩展名不区分大小写，需带点号
func NewDirSource(dir string, extensions []string) *DirSource {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}
	return &DirSource{dir: dir, extensions: exts}
}

// Dir 返回扫描的目录
func (s *DirSource) Dir() string {
	return s.dir
}

// Supports 判断文件名是否属于本文档源
func (s *DirSource) Supports(name string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Documents 返回按文件名排序的文档列表
func (s *DirSource) Documents(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.dir)
		}
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !s.Supports(e.Name()) {
			continue
		}
		docs = append(docs, Document{Name: e.Name(), Path: filepath.Join(s.dir, e.Name())})
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})
	return docs, nil
}
