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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/cache"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/dao"
)

var ErrQuestionNotFound = dao.ErrQuestionNotFound

//go:generate mockgen -source=./question.go -destination=./mocks/question.mock.go -package=repomocks Repository
type Repository interface {
	// ListViews 是缓存旁路读：命中直接返回，未命中落库并回填。
	// 返回的投影不包含任何身份相关字段。
	ListViews(ctx context.Context, q domain.ListQuery) ([]domain.QuestionView, error)
	// ListAll 直连数据库，带 IsAnswer，只给内部导出用，不走缓存
	ListAll(ctx context.Context, q domain.ListQuery) ([]domain.Question, error)
	GetByID(ctx context.Context, id int64) (domain.Question, error)
	Create(ctx context.Context, que domain.Question) (int64, error)
	AddChoices(ctx context.Context, qid int64, cs []domain.Choice) error
	ChoiceByID(ctx context.Context, id int64) (domain.Choice, error)
	CorrectChoiceIds(ctx context.Context, qids []int64) (map[int64]int64, error)
}

type CachedQuestionRepository struct {
	dao    dao.QuestionDAO
	cache  cache.QuestionListCache
	logger *elog.Component
}

func NewCachedQuestionRepository(d dao.QuestionDAO, c cache.QuestionListCache) Repository {
	return &CachedQuestionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (c *CachedQuestionRepository) ListViews(ctx context.Context, q domain.ListQuery) ([]domain.QuestionView, error) {
	views, err := c.cache.GetList(ctx, q)
	if err == nil {
		return views, nil
	}
	// 缓存不可用等价于未命中，请求继续落库
	if err != cache.ErrKeyNotFound {
		c.logger.Warn("查询列表缓存失败",
			elog.String("key", cache.Key(q)),
			elog.FieldErr(err))
	}
	qs, err := c.dao.List(ctx, c.toFilter(q))
	if err != nil {
		return nil, err
	}
	views = slice.Map(qs, func(idx int, src dao.Question) domain.QuestionView {
		return c.toView(src)
	})
	// 回填失败不影响本次请求。
	// 并发未命中可能重复回填，值只由 key 决定，覆盖无害。
	if err := c.cache.SetList(ctx, q, views); err != nil {
		c.logger.Warn("回填列表缓存失败",
			elog.String("key", cache.Key(q)),
			elog.FieldErr(err))
	}
	return views, nil
}

func (c *CachedQuestionRepository) ListAll(ctx context.Context, q domain.ListQuery) ([]domain.Question, error) {
	qs, err := c.dao.List(ctx, c.toFilter(q))
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		return c.toDomain(src)
	}), nil
}

func (c *CachedQuestionRepository) GetByID(ctx context.Context, id int64) (domain.Question, error) {
	q, err := c.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	return c.toDomain(q), nil
}

func (c *CachedQuestionRepository) Create(ctx context.Context, que domain.Question) (int64, error) {
	return c.dao.Create(ctx, c.toEntity(que))
}

func (c *CachedQuestionRepository) AddChoices(ctx context.Context, qid int64, cs []domain.Choice) error {
	return c.dao.CreateChoices(ctx, qid, slice.Map(cs, func(idx int, src domain.Choice) dao.Choice {
		return dao.Choice{
			Text:     src.Text,
			IsAnswer: src.IsAnswer,
		}
	}))
}

func (c *CachedQuestionRepository) ChoiceByID(ctx context.Context, id int64) (domain.Choice, error) {
	ch, err := c.dao.ChoiceByID(ctx, id)
	if err != nil {
		return domain.Choice{}, err
	}
	return domain.Choice{
		Id:       ch.Id,
		Text:     ch.Text,
		IsAnswer: ch.IsAnswer,
	}, nil
}

func (c *CachedQuestionRepository) CorrectChoiceIds(ctx context.Context, qids []int64) (map[int64]int64, error) {
	return c.dao.CorrectChoiceIds(ctx, qids)
}

func (c *CachedQuestionRepository) toFilter(q domain.ListQuery) dao.ListFilter {
	f := dao.ListFilter{
		OrderColumn: c.orderColumn(q.OrderBy),
		Desc:        q.OrderDirection == domain.DirectionDesc,
		Limit:       q.Limit,
		Offset:      q.Offset,
		Subdomain:   q.Subdomain,
		Level:       string(q.Level),
	}
	if q.Subdomain == "" && !q.AllSubdomains {
		f.Subdomains = domain.DefaultSubdomains
	}
	return f
}

// orderColumn 把对外的排序字段映射成列名。
// 入参在 Normalize 里已经校验过，这里兜底回落到 ctime。
func (c *CachedQuestionRepository) orderColumn(o domain.OrderBy) string {
	switch o {
	case domain.OrderByUpdatedAt:
		return "utime"
	case domain.OrderById:
		return "id"
	case domain.OrderBySubdomain:
		return "subdomain"
	case domain.OrderByLevel:
		return "level"
	default:
		return "ctime"
	}
}

// toView 投影成可缓存的形态，IsAnswer 在这里被剥离
func (c *CachedQuestionRepository) toView(q dao.Question) domain.QuestionView {
	return domain.QuestionView{
		Id:          q.Id,
		Text:        q.Text,
		Snippet:     q.Snippet.String,
		Explanation: q.Explanation.String,
		Choices: slice.Map(q.Choices, func(idx int, src dao.Choice) domain.ChoiceView {
			return domain.ChoiceView{
				Id:   src.Id,
				Text: src.Text,
			}
		}),
	}
}

func (c *CachedQuestionRepository) toDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:          q.Id,
		Text:        q.Text,
		Snippet:     q.Snippet.String,
		Explanation: q.Explanation.String,
		Subdomain:   q.Subdomain,
		Level:       domain.DifficultyLevel(q.Level),
		Choices: slice.Map(q.Choices, func(idx int, src dao.Choice) domain.Choice {
			return domain.Choice{
				Id:       src.Id,
				Text:     src.Text,
				IsAnswer: src.IsAnswer,
			}
		}),
		Ctime: time.UnixMilli(q.Ctime),
		Utime: time.UnixMilli(q.Utime),
	}
}

func (c *CachedQuestionRepository) toEntity(que domain.Question) dao.Question {
	return dao.Question{
		Id:   que.Id,
		Text: que.Text,
		Snippet: sql.NullString{
			String: que.Snippet,
			Valid:  que.Snippet != "",
		},
		Explanation: sql.NullString{
			String: que.Explanation,
			Valid:  que.Explanation != "",
		},
		Subdomain: que.Subdomain,
		Level:     string(que.Level),
		Choices: slice.Map(que.Choices, func(idx int, src domain.Choice) dao.Choice {
			return dao.Choice{
				Text:     src.Text,
				IsAnswer: src.IsAnswer,
			}
		}),
	}
}
