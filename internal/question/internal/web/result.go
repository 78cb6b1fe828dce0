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
	"github.com/ecodeclub/ginx"

	"github.com/softwarequizzes/quizbank/internal/question/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	questionNotFoundResult = ginx.Result{
		Code: errs.QuestionNotFound.Code,
		Msg:  errs.QuestionNotFound.Msg,
	}
	choiceNotFoundResult = ginx.Result{
		Code: errs.ChoiceNotFound.Code,
		Msg:  errs.ChoiceNotFound.Msg,
	}
	answerNotFlaggedResult = ginx.Result{
		Code: errs.AnswerNotFlagged.Code,
		Msg:  errs.AnswerNotFlagged.Msg,
	}
	bulkSubmitFailedResult = ginx.Result{
		Code: errs.BulkSubmitFailed.Code,
		Msg:  errs.BulkSubmitFailed.Msg,
	}
)
