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

package search

import (
	"github.com/olivere/elastic/v7"

	"github.com/softwarequizzes/quizbank/internal/question"
	"github.com/softwarequizzes/quizbank/internal/search/internal/job"
	"github.com/softwarequizzes/quizbank/internal/search/internal/repository"
	"github.com/softwarequizzes/quizbank/internal/search/internal/repository/dao"
	"github.com/softwarequizzes/quizbank/internal/search/internal/service"
	"github.com/softwarequizzes/quizbank/internal/search/internal/web"
)

func InitModule(client *elastic.Client, queModule *question.Module) *Module {
	repo := repository.NewQuestionRepository(dao.NewQuestionElasticDAO(client))
	svc := service.NewSyncService(queModule.Svc, repo)
	return &Module{
		AdminHdl: web.NewAdminHandler(svc),
		Svc:      svc,
		Job:      job.NewSyncJob(svc),
	}
}
