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

package user

import (
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"

	"github.com/softwarequizzes/quizbank/internal/user/internal/repository"
	"github.com/softwarequizzes/quizbank/internal/user/internal/repository/cache"
	"github.com/softwarequizzes/quizbank/internal/user/internal/repository/dao"
	"github.com/softwarequizzes/quizbank/internal/user/internal/service"
	"github.com/softwarequizzes/quizbank/internal/user/internal/web"
)

func InitModule(db *egorm.Component, rdb redis.Cmdable) *Module {
	svc := initService(db, rdb)
	return &Module{
		Hdl: web.NewHandler(svc),
		Svc: svc,
	}
}

func initService(db *egorm.Component, rdb redis.Cmdable) service.UserService {
	repo := repository.NewCachedUserRepository(
		initDAO(db),
		cache.NewRegisteredEmailRedisCache(rdb),
	)
	codec := service.NewJWTCodec(econf.GetString("jwt.secretKey"))
	return service.NewUserService(repo, codec)
}

func initDAO(db *egorm.Component) dao.UserDAO {
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}
