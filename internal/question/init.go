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

package question

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"

	"github.com/softwarequizzes/quizbank/internal/question/internal/repository"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/cache"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/dao"
	"github.com/softwarequizzes/quizbank/internal/question/internal/service"
	"github.com/softwarequizzes/quizbank/internal/question/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	repo := repository.NewCachedQuestionRepository(
		initQuestionDAO(db),
		cache.NewQuestionListECache(ec),
	)
	answerRepo := repository.NewAnswerRepository(initAnswerDAO(db))
	svc := service.NewService(repo, answerRepo)
	answerSvc := service.NewAnswerService(repo, answerRepo)
	return &Module{
		Hdl:      web.NewHandler(svc, answerSvc),
		AdminHdl: web.NewAdminHandler(svc),
		Svc:      svc,
	}
}

var daoOnce = sync.Once{}

func initTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
}

func initQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	initTableOnce(db)
	return dao.NewGORMQuestionDAO(db)
}

func initAnswerDAO(db *egorm.Component) dao.UserAnswerDAO {
	initTableOnce(db)
	return dao.NewGORMUserAnswerDAO(db)
}
