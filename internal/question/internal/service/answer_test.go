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

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository"
	repomocks "github.com/softwarequizzes/quizbank/internal/question/internal/repository/mocks"
)

func testQuestion() domain.Question {
	return domain.Question{
		Id:   1,
		Text: "What is 2+2?",
		Choices: []domain.Choice{
			{Id: 11, Text: "3", IsAnswer: false},
			{Id: 12, Text: "4", IsAnswer: true},
		},
	}
}

func TestAnswerService_Submit(t *testing.T) {
	caller := domain.Caller{Id: 7}
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository)
		sub        domain.AnswerSubmission
		wantResult domain.AnswerResult
		wantErr    error
	}{
		{
			name: "答对",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testQuestion(), nil)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(12)).
					Return(domain.Choice{Id: 12, Text: "4", IsAnswer: true}, nil)
				answerRepo.EXPECT().Save(gomock.Any(), domain.UserAnswer{
					Uid:        7,
					QuestionId: 1,
					ChoiceId:   12,
				}).Return(int64(100), nil)
				return repo, answerRepo
			},
			sub:        domain.AnswerSubmission{QuestionId: 1, ChoiceId: 12},
			wantResult: domain.AnswerResult{Correct: true, CorrectChoiceId: 12},
		},
		{
			name: "答错也会落库",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testQuestion(), nil)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(11)).
					Return(domain.Choice{Id: 11, Text: "3", IsAnswer: false}, nil)
				answerRepo.EXPECT().Save(gomock.Any(), domain.UserAnswer{
					Uid:        7,
					QuestionId: 1,
					ChoiceId:   11,
				}).Return(int64(101), nil)
				return repo, answerRepo
			},
			sub:        domain.AnswerSubmission{QuestionId: 1, ChoiceId: 11},
			wantResult: domain.AnswerResult{Correct: false, CorrectChoiceId: 12},
		},
		{
			name: "题目不存在，什么都不落库",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), int64(404)).
					Return(domain.Question{}, gorm.ErrRecordNotFound)
				return repo, answerRepo
			},
			sub:     domain.AnswerSubmission{QuestionId: 404, ChoiceId: 12},
			wantErr: ErrInvalidQuestionId,
		},
		{
			name: "选项不存在，什么都不落库",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testQuestion(), nil)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(404)).
					Return(domain.Choice{}, gorm.ErrRecordNotFound)
				return repo, answerRepo
			},
			sub:     domain.AnswerSubmission{QuestionId: 1, ChoiceId: 404},
			wantErr: ErrInvalidChoiceId,
		},
		{
			name: "没有标记正确答案",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				broken := testQuestion()
				broken.Choices[1].IsAnswer = false
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(broken, nil)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(11)).
					Return(domain.Choice{Id: 11, Text: "3"}, nil)
				return repo, answerRepo
			},
			sub:     domain.AnswerSubmission{QuestionId: 1, ChoiceId: 11},
			wantErr: ErrNoAnswerFlagged,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, answerRepo := tc.mock(ctrl)
			svc := NewAnswerService(repo, answerRepo)
			res, err := svc.Submit(context.Background(), caller, tc.sub)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantResult, res)
		})
	}
}

func TestAnswerService_SubmitBulk(t *testing.T) {
	caller := domain.Caller{Id: 7}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository)
		subs    []domain.AnswerSubmission
		wantErr error
	}{
		{
			name: "整批成功",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testQuestion(), nil).Times(2)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(11)).
					Return(domain.Choice{Id: 11}, nil)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(12)).
					Return(domain.Choice{Id: 12}, nil)
				answerRepo.EXPECT().SaveBatch(gomock.Any(), []domain.UserAnswer{
					{Uid: 7, QuestionId: 1, ChoiceId: 11},
					{Uid: 7, QuestionId: 1, ChoiceId: 12},
				}).Return(nil)
				return repo, answerRepo
			},
			subs: []domain.AnswerSubmission{
				{QuestionId: 1, ChoiceId: 11},
				{QuestionId: 1, ChoiceId: 12},
			},
		},
		{
			name: "有一条不合法，整批拒绝",
			mock: func(ctrl *gomock.Controller) (repository.Repository, repository.AnswerRepository) {
				repo := repomocks.NewMockRepository(ctrl)
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testQuestion(), nil)
				repo.EXPECT().ChoiceByID(gomock.Any(), int64(11)).
					Return(domain.Choice{Id: 11}, nil)
				repo.EXPECT().GetByID(gomock.Any(), int64(404)).
					Return(domain.Question{}, gorm.ErrRecordNotFound)
				return repo, answerRepo
			},
			subs: []domain.AnswerSubmission{
				{QuestionId: 1, ChoiceId: 11},
				{QuestionId: 404, ChoiceId: 12},
			},
			wantErr: ErrInvalidQuestionId,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, answerRepo := tc.mock(ctrl)
			svc := NewAnswerService(repo, answerRepo)
			err := svc.SubmitBulk(context.Background(), caller, tc.subs)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
