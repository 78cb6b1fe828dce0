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
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"

	"github.com/softwarequizzes/quizbank/internal/pkg/middleware"
	baguwen "github.com/softwarequizzes/quizbank/internal/question"
	"github.com/softwarequizzes/quizbank/internal/search"
	"github.com/softwarequizzes/quizbank/internal/user"
)

func initGinxServer(
	userModule *user.Module,
	queModule *baguwen.Module,
	searchModule *search.Module,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "softwarequizzes.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello world")
	})
	userModule.Hdl.PublicRoutes(res.Engine)
	// 身份校验，abc 演示 token 也从这里进来
	res.Use(middleware.NewCheckIdentityMiddlewareBuilder(userModule.Svc).Build())
	userModule.Hdl.PrivateRoutes(res.Engine)
	queModule.Hdl.MemberRoutes(res.Engine)
	// 管理端
	res.Use(middleware.NewCheckAdminMiddlewareBuilder().Build())
	queModule.AdminHdl.AdminRoutes(res.Engine)
	if searchModule != nil {
		searchModule.AdminHdl.AdminRoutes(res.Engine)
	}
	return res
}
