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
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"

	"github.com/softwarequizzes/quizbank/internal/pkg/middleware"
	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/service"
	"github.com/softwarequizzes/quizbank/internal/user"
)

type Handler struct {
	svc       service.Service
	answerSvc service.AnswerService
	logger    *elog.Component
}

func NewHandler(svc service.Service, answerSvc service.AnswerService) *Handler {
	return &Handler{
		svc:       svc,
		answerSvc: answerSvc,
		logger:    elog.DefaultLogger,
	}
}

// MemberRoutes 挂在身份中间件之后，占位用户也能访问
func (h *Handler) MemberRoutes(server *gin.Engine) {
	server.GET("/questions", ginx.W(h.List))
	server.POST("/answers", ginx.B[SubmitReq](h.Submit))
	server.POST("/answers/bulk", ginx.B[SubmitBulkReq](h.SubmitBulk))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	var req ListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return invalidInputResult, nil
	}
	caller, err := h.caller(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	views, err := h.svc.List(ctx, req.toQuery(), caller)
	switch {
	case errors.Is(err, domain.ErrInvalidOrderBy),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidLevel):
		return ginx.Result{
			Code: invalidInputResult.Code,
			Msg:  err.Error(),
		}, nil
	case err == nil:
		return ginx.Result{
			Data: views,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	res, err := h.answerSvc.Submit(ctx, caller, domain.AnswerSubmission{
		QuestionId: req.QuestionId,
		ChoiceId:   req.ChoiceId,
	})
	switch {
	case errors.Is(err, service.ErrInvalidQuestionId):
		return questionNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidChoiceId):
		return choiceNotFoundResult, nil
	case errors.Is(err, service.ErrNoAnswerFlagged):
		return answerNotFlaggedResult, err
	case err == nil:
		return ginx.Result{
			Data: SubmitResp{
				Correct:  res.Correct,
				AnswerId: res.CorrectChoiceId,
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}

// SubmitBulk 对外只报整体成败，不暴露是哪一条出的问题
func (h *Handler) SubmitBulk(ctx *ginx.Context, req SubmitBulkReq) (ginx.Result, error) {
	caller, err := h.caller(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	subs := make([]domain.AnswerSubmission, 0, len(req.Answers))
	for _, a := range req.Answers {
		subs = append(subs, domain.AnswerSubmission{
			QuestionId: a.QuestionId,
			ChoiceId:   a.ChoiceId,
		})
	}
	err = h.answerSvc.SubmitBulk(ctx, caller, subs)
	switch {
	case errors.Is(err, service.ErrInvalidQuestionId),
		errors.Is(err, service.ErrInvalidChoiceId):
		return bulkSubmitFailedResult, nil
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) caller(ctx *ginx.Context) (domain.Caller, error) {
	u, ok := middleware.UserFromCtx(ctx.Context)
	if !ok {
		// 路由配置错了才会走到这里
		return domain.Caller{}, errors.New("上下文中没有用户")
	}
	return domain.Caller{
		Id:        u.Id,
		Anonymous: u.Email == user.PlaceholderEmail,
	}, nil
}
