// Copyright 2024 softwarequizzes
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"

	baguwen "github.com/softwarequizzes/quizbank/internal/question"
	"github.com/softwarequizzes/quizbank/internal/search"
	"github.com/softwarequizzes/quizbank/internal/user"
)

type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
}

func InitApp() (*App, error) {
	db := InitDB()
	rdb := InitRedis()
	ec := InitCache(rdb)

	userModule := user.InitModule(db, rdb)
	queModule := baguwen.InitModule(db, ec)
	// 没配 ES 就不装搜索模块，定时任务和管理端路由都不挂
	var searchModule *search.Module
	if es := InitES(); es != nil {
		searchModule = search.InitModule(es, queModule)
	}

	return &App{
		Web:   initGinxServer(userModule, queModule, searchModule),
		Crons: initCronJobs(searchModule),
	}, nil
}
