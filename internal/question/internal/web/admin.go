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

package web

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/service"
)

// AdminHandler 的路由必须挂在管理员校验中间件之后
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) AdminRoutes(server *gin.Engine) {
	server.POST("/questions", ginx.B[CreateQuestionReq](h.Create))
	server.POST("/questions/:id/choices", ginx.B[AddChoicesReq](h.AddChoices))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateQuestionReq) (ginx.Result, error) {
	level := domain.DifficultyLevel(req.Level)
	if req.Text == "" || req.Subdomain == "" || !level.Valid() {
		return invalidInputResult, nil
	}
	id, err := h.svc.Create(ctx, domain.Question{
		Text:        req.Text,
		Subdomain:   req.Subdomain,
		Level:       level,
		Snippet:     req.Snippet,
		Explanation: req.Explanation,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return h.readBack(ctx, id)
}

func (h *AdminHandler) AddChoices(ctx *ginx.Context, req AddChoicesReq) (ginx.Result, error) {
	qid, err := ctx.Param("id").AsInt64()
	if err != nil || len(req.Choices) == 0 {
		return invalidInputResult, nil
	}
	cs := slice.Map(req.Choices, func(idx int, src ChoiceWrite) domain.Choice {
		return domain.Choice{
			Text:     src.Text,
			IsAnswer: src.IsAnswer,
		}
	})
	err = h.svc.AddChoices(ctx, qid, cs)
	switch {
	case errors.Is(err, service.ErrInvalidQuestionId):
		return questionNotFoundResult, nil
	case err == nil:
		return h.readBack(ctx, qid)
	default:
		return systemErrorResult, err
	}
}

// readBack 写完回读整道题返回给管理端
func (h *AdminHandler) readBack(ctx *ginx.Context, qid int64) (ginx.Result, error) {
	que, err := h.svc.Detail(ctx, qid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(que),
	}, nil
}
