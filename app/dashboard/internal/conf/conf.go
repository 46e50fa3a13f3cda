package conf

type Bootstrap struct {
	Server   *Server   `json:"server"`
	Data     *Data     `json:"data"`
	Analysis *Analysis `json:"analysis"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	ReportDir  string   `json:"report_dir"`
	Extensions []string `json:"extensions"`
}

// Analysis 与 esg_radar 引擎配置一一对应
type Analysis struct {
	Lexicon         string       `json:"lexicon"`
	Sentiment       *Sentiment   `json:"sentiment"`
	DocumentTimeout string       `json:"document_timeout"`
	Concurrency     *Concurrency `json:"concurrency"`
	Log             *Log         `json:"log"`
}

type Sentiment struct {
	Provider string `json:"provider"`
	Llm      *LLM   `json:"llm"`
}

type LLM struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Model   string `json:"model"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
