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

	"github.com/softwarequizzes/quizbank/internal/search/internal/service"
)

type AdminHandler struct {
	svc service.SyncService
}

func NewAdminHandler(svc service.SyncService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) AdminRoutes(server *gin.Engine) {
	server.GET("/questions/search/syncAll", ginx.W(h.SyncAll))
}

func (h *AdminHandler) SyncAll(ctx *ginx.Context) (ginx.Result, error) {
	if err := h.svc.SyncAll(ctx); err != nil {
		return ginx.Result{Code: 503001, Msg: "同步失败"}, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
