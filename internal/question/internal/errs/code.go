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

package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 502002, Msg: "非法输入"}
	QuestionNotFound = ErrorCode{Code: 502404, Msg: "Invalid question id"}
	ChoiceNotFound   = ErrorCode{Code: 502405, Msg: "Invalid choice id"}
	AnswerNotFlagged = ErrorCode{Code: 502406, Msg: "题目没有标记正确答案"}
	BulkSubmitFailed = ErrorCode{Code: 502407, Msg: "批量提交失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
