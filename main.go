package main

import (
	"context"

	"github.com/ecodeclub/ecocredit/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	// 先触发初始化
	egoApp := ego.New()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	// 启动消费者
	for i := range app.Consumers {
		app.Consumers[i].Start(context.Background())
	}
	err = egoApp.
		Invoker().
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
			(*egin.Component)(app.Admin)).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
	for i := range app.Consumers {
		if err = app.Consumers[i].Stop(context.Background()); err != nil {
			elog.DefaultLogger.Error("关闭消费者失败", elog.FieldErr(err))
		}
	}
}
