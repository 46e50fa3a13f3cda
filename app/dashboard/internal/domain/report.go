package domain

// Report 数据目录中的一份待分析文档
type Report struct {
	Name string
	Path string
}
