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

package domain

import "time"

// Question 和 Choice 是一对多的关系
type Question struct {
	Id   int64
	Text string
	// 代码片段，可以为空
	Snippet string
	// 答案解析，可以为空
	Explanation string
	// 题目分类，比如 python
	Subdomain string
	Level     DifficultyLevel

	Choices []Choice
	Ctime   time.Time
	Utime   time.Time
}

type Choice struct {
	Id   int64
	Text string
	// 是否正确答案。序列化到缓存或者 API 响应之前必须剥离
	IsAnswer bool
}

type DifficultyLevel string

const (
	LevelEasy     DifficultyLevel = "easy"
	LevelModerate DifficultyLevel = "moderate"
	LevelHard     DifficultyLevel = "hard"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case LevelEasy, LevelModerate, LevelHard:
		return true
	}
	return false
}

// QuestionView 是对外暴露的投影。
// 基础字段（Text/Snippet/Explanation/Choices）对所有调用者一致，可以缓存；
// UserAnswerId 和 CorrectAnswerId 跟调用者身份绑定，每次请求现算，绝对不能进缓存。
type QuestionView struct {
	Id          int64        `json:"id"`
	Text        string       `json:"text"`
	Snippet     string       `json:"snippet,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
	Choices     []ChoiceView `json:"choices"`

	UserAnswerId    *int64 `json:"user_answer_id,omitempty"`
	CorrectAnswerId *int64 `json:"correct_answer_id,omitempty"`
}

// ChoiceView 不携带 IsAnswer，防止答案泄露到缓存里
type ChoiceView struct {
	Id   int64  `json:"id"`
	Text string `json:"text"`
}

// Caller 是列表接口的调用者。
// Anonymous 为 true 的时候是占位用户，不做任何身份相关的叠加。
type Caller struct {
	Id        int64
	Anonymous bool
}
