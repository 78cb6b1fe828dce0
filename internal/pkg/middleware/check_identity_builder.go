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
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/softwarequizzes/quizbank/internal/user"
)

const ctxKeyUser = "quizbank-user"

// CheckIdentityMiddlewareBuilder 把 Authorization 里的 bearer token
// 解析成用户塞进请求上下文。解析不了就 401。
// 演示 token 也从这里进来，由 user 模块负责特判。
type CheckIdentityMiddlewareBuilder struct {
	svc    user.UserService
	logger *elog.Component
}

func NewCheckIdentityMiddlewareBuilder(svc user.UserService) *CheckIdentityMiddlewareBuilder {
	return &CheckIdentityMiddlewareBuilder{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckIdentityMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				ginx.Result{Msg: "Not authenticated"})
			return
		}
		u, err := c.svc.Resolve(ctx.Request.Context(), token)
		if err != nil {
			c.logger.Debug("解析 token 失败", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				ginx.Result{Msg: err.Error()})
			return
		}
		ctx.Set(ctxKeyUser, u)
	}
}

func bearerToken(ctx *gin.Context) (string, bool) {
	auth := ctx.GetHeader("Authorization")
	if auth == "" {
		return "", false
	}
	segs := strings.SplitN(auth, " ", 2)
	if len(segs) != 2 || !strings.EqualFold(segs[0], "Bearer") {
		return "", false
	}
	return segs[1], true
}

// UserFromCtx 取出身份中间件解析好的用户。
// 只能在挂了 CheckIdentityMiddlewareBuilder 的路由里用。
func UserFromCtx(ctx *gin.Context) (user.User, bool) {
	val, ok := ctx.Get(ctxKeyUser)
	if !ok {
		return user.User{}, false
	}
	u, ok := val.(user.User)
	return u, ok
}
