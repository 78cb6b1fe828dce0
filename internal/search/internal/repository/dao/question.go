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

package dao

import (
	"context"
	"strconv"

	"github.com/olivere/elastic/v7"
)

const QuestionIndexName = "questions"

type Question struct {
	Id        int64    `json:"id"`
	Text      string   `json:"text"`
	Subdomain string   `json:"subdomain"`
	Choices   []string `json:"choices"`
}

//go:generate mockgen -source=./question.go -destination=../mocks/question_dao.mock.go -package=daomocks QuestionDAO
type QuestionDAO interface {
	// Input 按文档 id 写入，重复导出是幂等的覆盖
	Input(ctx context.Context, que Question) error
}

type questionElasticDAO struct {
	client *elastic.Client
}

func NewQuestionElasticDAO(client *elastic.Client) QuestionDAO {
	return &questionElasticDAO{client: client}
}

func (q *questionElasticDAO) Input(ctx context.Context, que Question) error {
	_, err := q.client.Index().
		Index(QuestionIndexName).
		Id(strconv.FormatInt(que.Id, 10)).
		BodyJson(que).
		Do(ctx)
	return err
}
