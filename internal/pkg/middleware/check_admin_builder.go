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

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckAdminMiddlewareBuilder 管理端写接口的前置校验。
// 必须挂在身份中间件之后，校验不过的请求到不了 handler，
// 也就不会发生任何写入。
type CheckAdminMiddlewareBuilder struct {
	logger *elog.Component
}

func NewCheckAdminMiddlewareBuilder() *CheckAdminMiddlewareBuilder {
	return &CheckAdminMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

func (c *CheckAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		u, ok := UserFromCtx(ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !u.IsAdmin() {
			c.logger.Debug("非管理员访问管理接口",
				elog.String("email", u.Email))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
