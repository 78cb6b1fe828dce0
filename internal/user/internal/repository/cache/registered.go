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

package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const registeredUsersKey = "registered-users"

// RegisteredEmailCache 是注册邮箱的快速成员集合。
// 它只是注册去重的快路径，数据库才是权威：集合可能落后于库，
// 所以调用方查完集合之后还要再查库。
//
//go:generate mockgen -source=./registered.go -package=repomocks -destination=../mocks/registered.mock.go RegisteredEmailCache
type RegisteredEmailCache interface {
	Contains(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, email string) error
}

type RegisteredEmailRedisCache struct {
	client redis.Cmdable
}

func NewRegisteredEmailRedisCache(client redis.Cmdable) RegisteredEmailCache {
	return &RegisteredEmailRedisCache{client: client}
}

func (c *RegisteredEmailRedisCache) Contains(ctx context.Context, email string) (bool, error) {
	return c.client.SIsMember(ctx, registeredUsersKey, email).Result()
}

func (c *RegisteredEmailRedisCache) Add(ctx context.Context, email string) error {
	return c.client.SAdd(ctx, registeredUsersKey, email).Err()
}
