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
	"github.com/pkg/errors"

	"github.com/softwarequizzes/quizbank/internal/user/internal/service"
)

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/register", ginx.B[RegisterReq](h.Register))
	server.POST("/token", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	token, err := h.svc.Register(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTooShort):
		return emailTooShortResult, nil
	case errors.Is(err, service.ErrEmailTaken):
		return emailTakenResult, nil
	case err == nil:
		return ginx.Result{
			Data: TokenResp{
				AccessToken: token,
				TokenType:   "bearer",
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	token, err := h.svc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	case errors.Is(err, service.ErrIncorrectPassword):
		return incorrectPasswordResult, nil
	case err == nil:
		return ginx.Result{
			Data: TokenResp{
				AccessToken: token,
				TokenType:   "bearer",
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}
