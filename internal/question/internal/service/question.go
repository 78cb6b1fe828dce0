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
	"golang.org/x/sync/errgroup"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository"
)

//go:generate mockgen -source=./question.go -destination=../../mocks/question.mock.go -package=quemocks Service
type Service interface {
	// List 返回过滤分页之后的题目投影。
	// 基础字段走缓存，对所有调用者一致；
	// UserAnswerId/CorrectAnswerId 按调用者现算，命中与否都会叠加。
	// 匿名（占位）调用者两个字段都不给：答案不能从这个接口泄露给游客。
	List(ctx context.Context, q domain.ListQuery, caller domain.Caller) ([]domain.QuestionView, error)
	// ListAll 给导出任务用，绕过分类白名单和缓存
	ListAll(ctx context.Context, q domain.ListQuery) ([]domain.Question, error)
	Detail(ctx context.Context, qid int64) (domain.Question, error)
	Create(ctx context.Context, que domain.Question) (int64, error)
	AddChoices(ctx context.Context, qid int64, cs []domain.Choice) error
}

type service struct {
	repo       repository.Repository
	answerRepo repository.AnswerRepository
}

func NewService(repo repository.Repository, answerRepo repository.AnswerRepository) Service {
	return &service{
		repo:       repo,
		answerRepo: answerRepo,
	}
}

func (s *service) List(ctx context.Context, q domain.ListQuery, caller domain.Caller) ([]domain.QuestionView, error) {
	q, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	views, err := s.repo.ListViews(ctx, q)
	if err != nil {
		return nil, err
	}
	if caller.Anonymous || len(views) == 0 {
		return views, nil
	}
	return s.overlay(ctx, views, caller)
}

// overlay 在共享的缓存投影之上叠加身份相关字段。
// 每次请求都重新查询，结果不会写回缓存。
func (s *service) overlay(ctx context.Context, views []domain.QuestionView, caller domain.Caller) ([]domain.QuestionView, error) {
	qids := slice.Map(views, func(idx int, src domain.QuestionView) int64 {
		return src.Id
	})
	var (
		eg      errgroup.Group
		mine    map[int64]int64
		correct map[int64]int64
	)
	eg.Go(func() error {
		var err error
		mine, err = s.answerRepo.LatestByUser(ctx, caller.Id, qids)
		return err
	})
	eg.Go(func() error {
		var err error
		correct, err = s.repo.CorrectChoiceIds(ctx, qids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for i := range views {
		if cid, ok := mine[views[i].Id]; ok {
			views[i].UserAnswerId = &cid
		}
		if cid, ok := correct[views[i].Id]; ok {
			views[i].CorrectAnswerId = &cid
		}
	}
	return views, nil
}

func (s *service) ListAll(ctx context.Context, q domain.ListQuery) ([]domain.Question, error) {
	q.AllSubdomains = true
	q, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx, q)
}

func (s *service) Detail(ctx context.Context, qid int64) (domain.Question, error) {
	return s.repo.GetByID(ctx, qid)
}

func (s *service) Create(ctx context.Context, que domain.Question) (int64, error) {
	return s.repo.Create(ctx, que)
}

func (s *service) AddChoices(ctx context.Context, qid int64, cs []domain.Choice) error {
	err := s.repo.AddChoices(ctx, qid, cs)
	if errors.Is(err, repository.ErrQuestionNotFound) {
		return ErrInvalidQuestionId
	}
	return err
}
