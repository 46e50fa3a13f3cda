package data

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/engine"
)

// Data 持有 esg_radar 引擎，报告目录与分析能力都来自引擎
type Data struct {
	engine *engine.Engine
}

func NewData(eng *engine.Engine, logger log.Logger) (*Data, func(), error) {
	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		if err := eng.Close(); err != nil {
			log.NewHelper(logger).Errorf("close engine: %v", err)
		}
	}
	return &Data{engine: eng}, cleanup, nil
}
