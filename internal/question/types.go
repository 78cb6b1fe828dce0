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
	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/service"
	"github.com/softwarequizzes/quizbank/internal/question/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type AdminHandler = web.AdminHandler

type Question = domain.Question
type Choice = domain.Choice
type QuestionView = domain.QuestionView
type ListQuery = domain.ListQuery
type Caller = domain.Caller

// Service 方便测试和跨模块调用（导出任务按页拉题）
type Service = service.Service
type AnswerService = service.AnswerService

type OrderBy = domain.OrderBy
type OrderDirection = domain.OrderDirection

const (
	OrderByCreatedAt = domain.OrderByCreatedAt
	DirectionAsc     = domain.DirectionAsc
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
