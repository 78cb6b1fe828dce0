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
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ecodeclub/ecache"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
)

var (
	ErrKeyNotFound = errors.New("缓存中没有数据")
)

const (
	// 列表缓存过一段时间自然过期，写题目的时候不主动失效。
	// 题库更新低频，最多 5 分钟的陈旧窗口是可以接受的。
	expiration = 300 * time.Second
)

//go:generate mockgen -source=./question.go -destination=../mocks/question_cache.mock.go -package=repomocks QuestionListCache
type QuestionListCache interface {
	GetList(ctx context.Context, q domain.ListQuery) ([]domain.QuestionView, error)
	SetList(ctx context.Context, q domain.ListQuery, views []domain.QuestionView) error
}

type QuestionListECache struct {
	ec ecache.Cache
}

func NewQuestionListECache(ec ecache.Cache) QuestionListCache {
	return &QuestionListECache{
		ec: &ecache.NamespaceCache{
			Namespace: "question:list:",
			C:         ec,
		},
	}
}

func (q *QuestionListECache) GetList(ctx context.Context, query domain.ListQuery) ([]domain.QuestionView, error) {
	val := q.ec.Get(ctx, Key(query))
	if val.KeyNotFound() {
		return nil, ErrKeyNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询列表缓存出错")
	}
	var views []domain.QuestionView
	err := json.Unmarshal([]byte(val.Val.(string)), &views)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化列表缓存失败")
	}
	return views, nil
}

func (q *QuestionListECache) SetList(ctx context.Context, query domain.ListQuery, views []domain.QuestionView) error {
	data, err := json.Marshal(views)
	if err != nil {
		return errors.Wrap(err, "序列化题目列表失败")
	}
	return q.ec.Set(ctx, Key(query), string(data), expiration)
}

// Key 由全部过滤条件拼出来，未设置的字段用空串占位。
// 身份故意不参与：同样的过滤条件下所有调用者共享一份缓存。
// AllSubdomains 的查询（导出任务）不走缓存，所以不在 key 里。
func Key(q domain.ListQuery) string {
	return strings.Join([]string{
		q.Subdomain,
		string(q.Level),
		string(q.OrderBy),
		string(q.OrderDirection),
		strconv.Itoa(q.Limit),
		strconv.Itoa(q.Offset),
	}, "|")
}
