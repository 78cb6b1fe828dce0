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

package repository

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"

	"github.com/pkg/errors"

	"github.com/softwarequizzes/quizbank/internal/user/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/user/internal/repository/cache"
	"github.com/softwarequizzes/quizbank/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = gorm.ErrRecordNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=./mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	// EmailTaken 先问快路径集合，再落库确认。
	// 集合可能没同步上，两边都要看。
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// CachedUserRepository 在 DAO 之上挂了注册邮箱的快路径集合
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.RegisteredEmailCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.RegisteredEmailCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	id, err := ur.dao.Insert(ctx, dao.User{
		Email:    u.Email,
		Password: u.Password,
	})
	if err != nil {
		return 0, err
	}
	// 集合只是优化，写失败不影响注册
	if err := ur.cache.Add(ctx, u.Email); err != nil {
		ur.logger.Warn("写入注册邮箱集合失败",
			elog.String("email", u.Email),
			elog.FieldErr(err))
	}
	return id, nil
}

func (ur *CachedUserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	taken, err := ur.cache.Contains(ctx, email)
	if err != nil {
		// 缓存不可用按未命中处理，继续查库
		ur.logger.Warn("查询注册邮箱集合失败", elog.FieldErr(err))
	} else if taken {
		return true, nil
	}
	_, err = ur.dao.FindByEmail(ctx, email)
	if errors.Is(err, dao.ErrDataNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return ur.entityToDomain(u), nil
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return ur.entityToDomain(u), nil
}

func (ur *CachedUserRepository) entityToDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		Email:    u.Email,
		Password: u.Password,
		Ctime:    time.UnixMilli(u.Ctime),
		Utime:    time.UnixMilli(u.Utime),
	}
}
