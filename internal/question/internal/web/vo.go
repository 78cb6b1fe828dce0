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

package web

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
)

// ListReq 从查询串绑定
type ListReq struct {
	OrderBy         string `form:"order_by"`
	OrderDirection  string `form:"order_direction"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
	Subdomain       string `form:"subdomain"`
	DifficultyLevel string `form:"difficulty_level"`
}

func (r ListReq) toQuery() domain.ListQuery {
	return domain.ListQuery{
		OrderBy:        domain.OrderBy(r.OrderBy),
		OrderDirection: domain.OrderDirection(r.OrderDirection),
		Limit:          r.Limit,
		Offset:         r.Offset,
		Subdomain:      r.Subdomain,
		Level:          domain.DifficultyLevel(r.DifficultyLevel),
	}
}

type CreateQuestionReq struct {
	Text        string `json:"text"`
	Subdomain   string `json:"subdomain"`
	Level       string `json:"level"`
	Snippet     string `json:"snippet"`
	Explanation string `json:"explanation"`
}

type ChoiceWrite struct {
	Text     string `json:"text"`
	IsAnswer bool   `json:"is_answer"`
}

type AddChoicesReq struct {
	Choices []ChoiceWrite `json:"choices"`
}

type SubmitReq struct {
	QuestionId int64 `json:"question_id"`
	ChoiceId   int64 `json:"choice_id"`
}

type SubmitBulkReq struct {
	Answers []SubmitReq `json:"answers"`
}

type SubmitResp struct {
	Correct  bool  `json:"correct"`
	AnswerId int64 `json:"answer_id"`
}

// Question 是管理端写接口回读的投影，同样不带 is_answer
type Question struct {
	Id          int64    `json:"id"`
	Text        string   `json:"text"`
	Snippet     string   `json:"snippet,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Subdomain   string   `json:"subdomain"`
	Level       string   `json:"level"`
	Choices     []Choice `json:"choices"`
}

type Choice struct {
	Id   int64  `json:"id"`
	Text string `json:"text"`
}

func newQuestion(src domain.Question) Question {
	return Question{
		Id:          src.Id,
		Text:        src.Text,
		Snippet:     src.Snippet,
		Explanation: src.Explanation,
		Subdomain:   src.Subdomain,
		Level:       string(src.Level),
		Choices: slice.Map(src.Choices, func(idx int, c domain.Choice) Choice {
			return Choice{
				Id:   c.Id,
				Text: c.Text,
			}
		}),
	}
}
