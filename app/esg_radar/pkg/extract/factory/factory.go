package factory

import (
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract/html"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract/pdf"
)

// NewRouter 创建包含全部内置提取器的路由：.pdf、.html/.htm、.txt
func NewRouter() *extract.Router {
	htmlExtractor := html.NewExtractor()
	return extract.NewRouter().
		Register(".pdf", pdf.NewExtractor()).
		Register(".html", htmlExtractor).
		Register(".htm", htmlExtractor).
		Register(".txt", extract.Plain{})
}

// NewRouterFor 仅保留给定扩展名的内置提取器，未知扩展名被忽略
func NewRouterFor(extensions []string) *extract.Router {
	all := NewRouter()
	if len(extensions) == 0 {
		return all
	}
	r := extract.NewRouter()
	for _, ext := range extensions {
		if e, ok := all.Lookup(ext); ok {
			r.Register(ext, e)
		}
	}
	return r
}
