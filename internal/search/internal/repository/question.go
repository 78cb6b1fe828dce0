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

	"github.com/softwarequizzes/quizbank/internal/search/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/search/internal/repository/dao"
)

//go:generate mockgen -source=./question.go -destination=./mocks/question.mock.go -package=daomocks QuestionRepository
type QuestionRepository interface {
	Input(ctx context.Context, que domain.Question) error
}

type questionRepository struct {
	dao dao.QuestionDAO
}

func NewQuestionRepository(d dao.QuestionDAO) QuestionRepository {
	return &questionRepository{dao: d}
}

func (q *questionRepository) Input(ctx context.Context, que domain.Question) error {
	return q.dao.Input(ctx, q.toEntity(que))
}

func (q *questionRepository) toEntity(que domain.Question) dao.Question {
	return dao.Question{
		Id:        que.Id,
		Text:      que.Text,
		Subdomain: que.Subdomain,
		Choices:   que.Choices,
	}
}
