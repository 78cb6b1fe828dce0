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

	"github.com/ecodeclub/ekit/slice"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/dao"
)

//go:generate mockgen -source=./answer.go -destination=./mocks/answer.mock.go -package=repomocks AnswerRepository
type AnswerRepository interface {
	Save(ctx context.Context, ua domain.UserAnswer) (int64, error)
	// SaveBatch 整批一个事务，要么全部成功要么全部回滚
	SaveBatch(ctx context.Context, uas []domain.UserAnswer) error
	LatestByUser(ctx context.Context, uid int64, qids []int64) (map[int64]int64, error)
}

type answerRepository struct {
	dao dao.UserAnswerDAO
}

func NewAnswerRepository(d dao.UserAnswerDAO) AnswerRepository {
	return &answerRepository{dao: d}
}

func (a *answerRepository) Save(ctx context.Context, ua domain.UserAnswer) (int64, error) {
	return a.dao.Insert(ctx, a.toEntity(ua))
}

func (a *answerRepository) SaveBatch(ctx context.Context, uas []domain.UserAnswer) error {
	return a.dao.InsertBatch(ctx, slice.Map(uas, func(idx int, src domain.UserAnswer) dao.UserAnswer {
		return a.toEntity(src)
	}))
}

func (a *answerRepository) LatestByUser(ctx context.Context, uid int64, qids []int64) (map[int64]int64, error) {
	return a.dao.LatestByUser(ctx, uid, qids)
}

func (a *answerRepository) toEntity(ua domain.UserAnswer) dao.UserAnswer {
	return dao.UserAnswer{
		Uid:        ua.Uid,
		QuestionId: ua.QuestionId,
		ChoiceId:   ua.ChoiceId,
	}
}
