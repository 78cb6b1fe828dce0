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
	"github.com/gotomicro/ego/core/elog"

	"github.com/softwarequizzes/quizbank/internal/question"
	"github.com/softwarequizzes/quizbank/internal/search/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/search/internal/repository"
)

//go:generate mockgen -source=./sync.go -destination=../../mocks/sync.mock.go -package=searchmocks SyncService
type SyncService interface {
	// SyncAll 按创建时间升序分页拉全量题目写进索引。
	// 全量导出要绕过分类白名单，也不吃列表缓存。
	SyncAll(ctx context.Context) error
}

type syncService struct {
	queSvc question.Service
	repo   repository.QuestionRepository
	logger *elog.Component
}

const syncPageSize = 20

func NewSyncService(queSvc question.Service, repo repository.QuestionRepository) SyncService {
	return &syncService{
		queSvc: queSvc,
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *syncService) SyncAll(ctx context.Context) error {
	offset := 0
	for {
		qs, err := s.queSvc.ListAll(ctx, question.ListQuery{
			OrderBy:        question.OrderByCreatedAt,
			OrderDirection: question.DirectionAsc,
			Limit:          syncPageSize,
			Offset:         offset,
		})
		if err != nil {
			return err
		}
		if len(qs) == 0 {
			return nil
		}
		for _, que := range qs {
			err := s.repo.Input(ctx, domain.Question{
				Id:        que.Id,
				Text:      que.Text,
				Subdomain: que.Subdomain,
				Choices: slice.Map(que.Choices, func(idx int, c question.Choice) string {
					return c.Text
				}),
			})
			if err != nil {
				return err
			}
		}
		s.logger.Debug("同步一页题目到索引",
			elog.Any("offset", offset),
			elog.Any("count", len(qs)))
		offset += syncPageSize
	}
}
