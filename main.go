package main

import (
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"

	"github.com/softwarequizzes/quizbank/ioc"
)

// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	egoApp := ego.New()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	err = egoApp.
		Invoker().
		Serve(app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
