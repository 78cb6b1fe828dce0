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

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository"
)

var (
	ErrInvalidQuestionId = errors.New("invalid question id")
	ErrInvalidChoiceId   = errors.New("invalid choice id")
	// ErrNoAnswerFlagged 说明数据有问题：这道题一个正确答案都没标
	ErrNoAnswerFlagged = errors.New("question has no answer flagged")
)

//go:generate mockgen -source=./answer.go -destination=../../mocks/answer.mock.go -package=quemocks AnswerService
type AnswerService interface {
	// Submit 校验题目和选项都存在之后落库，并告知对错。
	// 注意：不校验选项是否属于这道题，跟线上行为保持一致。
	Submit(ctx context.Context, caller domain.Caller, sub domain.AnswerSubmission) (domain.AnswerResult, error)
	// SubmitBulk 整批一个事务。任何一条不合法整批失败，
	// 对外只报成功或失败，不报哪一条出的问题。
	SubmitBulk(ctx context.Context, caller domain.Caller, subs []domain.AnswerSubmission) error
}

type answerService struct {
	repo       repository.Repository
	answerRepo repository.AnswerRepository
}

func NewAnswerService(repo repository.Repository, answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{
		repo:       repo,
		answerRepo: answerRepo,
	}
}

func (a *answerService) Submit(ctx context.Context, caller domain.Caller, sub domain.AnswerSubmission) (domain.AnswerResult, error) {
	que, err := a.validate(ctx, sub)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	correctId, err := a.correctChoice(que)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	_, err = a.answerRepo.Save(ctx, domain.UserAnswer{
		Uid:        caller.Id,
		QuestionId: sub.QuestionId,
		ChoiceId:   sub.ChoiceId,
	})
	if err != nil {
		return domain.AnswerResult{}, err
	}
	return domain.AnswerResult{
		Correct:         sub.ChoiceId == correctId,
		CorrectChoiceId: correctId,
	}, nil
}

func (a *answerService) SubmitBulk(ctx context.Context, caller domain.Caller, subs []domain.AnswerSubmission) error {
	for _, sub := range subs {
		if _, err := a.validate(ctx, sub); err != nil {
			return err
		}
	}
	return a.answerRepo.SaveBatch(ctx, slice.Map(subs, func(idx int, src domain.AnswerSubmission) domain.UserAnswer {
		return domain.UserAnswer{
			Uid:        caller.Id,
			QuestionId: src.QuestionId,
			ChoiceId:   src.ChoiceId,
		}
	}))
}

func (a *answerService) validate(ctx context.Context, sub domain.AnswerSubmission) (domain.Question, error) {
	que, err := a.repo.GetByID(ctx, sub.QuestionId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Question{}, ErrInvalidQuestionId
	}
	if err != nil {
		return domain.Question{}, err
	}
	_, err = a.repo.ChoiceByID(ctx, sub.ChoiceId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Question{}, ErrInvalidChoiceId
	}
	if err != nil {
		return domain.Question{}, err
	}
	return que, nil
}

// correctChoice 取第一个标记为正确答案的选项。
// 选项按主键升序返回，多个标记时 id 最小的胜出。
func (a *answerService) correctChoice(que domain.Question) (int64, error) {
	for _, c := range que.Choices {
		if c.IsAnswer {
			return c.Id, nil
		}
	}
	return 0, ErrNoAnswerFlagged
}
