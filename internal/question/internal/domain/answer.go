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

// UserAnswer 是某个用户对某道题提交的选项。
// (user_id, question_id) 上故意没有唯一约束：占位用户也会留下记录，
// 重复提交会产生多行，叠加的时候取最近一次。
type UserAnswer struct {
	Id         int64
	Uid        int64
	QuestionId int64
	ChoiceId   int64
	Ctime      time.Time
	Utime      time.Time
}

// AnswerSubmission 是一次提交的入参
type AnswerSubmission struct {
	QuestionId int64
	ChoiceId   int64
}

// AnswerResult 告诉提交者这一题答没答对，以及正确选项是哪个
type AnswerResult struct {
	Correct         bool
	CorrectChoiceId int64
}
