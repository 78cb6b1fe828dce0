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

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/cache"
	"github.com/softwarequizzes/quizbank/internal/question/internal/repository/dao"
	repomocks "github.com/softwarequizzes/quizbank/internal/question/internal/repository/mocks"
)

func TestCachedQuestionRepository_ListViews(t *testing.T) {
	query := domain.ListQuery{
		OrderBy:        domain.OrderByCreatedAt,
		OrderDirection: domain.DirectionDesc,
		Limit:          20,
	}
	daoQuestions := []dao.Question{
		{
			Id:        1,
			Text:      "What is 2+2?",
			Snippet:   sql.NullString{String: "print(2+2)", Valid: true},
			Subdomain: "python",
			Level:     "easy",
			Choices: []dao.Choice{
				{Id: 11, Qid: 1, Text: "3", IsAnswer: false},
				{Id: 12, Qid: 1, Text: "4", IsAnswer: true},
			},
		},
	}
	views := []domain.QuestionView{
		{
			Id:      1,
			Text:    "What is 2+2?",
			Snippet: "print(2+2)",
			Choices: []domain.ChoiceView{
				{Id: 11, Text: "3"},
				{Id: 12, Text: "4"},
			},
		},
	}

	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (dao.QuestionDAO, cache.QuestionListCache)
		wantViews []domain.QuestionView
		wantErr   error
	}{
		{
			name: "缓存命中，不落库",
			mock: func(ctrl *gomock.Controller) (dao.QuestionDAO, cache.QuestionListCache) {
				d := repomocks.NewMockQuestionDAO(ctrl)
				c := repomocks.NewMockQuestionListCache(ctrl)
				c.EXPECT().GetList(gomock.Any(), query).Return(views, nil)
				return d, c
			},
			wantViews: views,
		},
		{
			name: "缓存未命中，落库并回填",
			mock: func(ctrl *gomock.Controller) (dao.QuestionDAO, cache.QuestionListCache) {
				d := repomocks.NewMockQuestionDAO(ctrl)
				c := repomocks.NewMockQuestionListCache(ctrl)
				c.EXPECT().GetList(gomock.Any(), query).Return(nil, cache.ErrKeyNotFound)
				d.EXPECT().List(gomock.Any(), dao.ListFilter{
					OrderColumn: "ctime",
					Desc:        true,
					Limit:       20,
					Subdomains:  domain.DefaultSubdomains,
				}).Return(daoQuestions, nil)
				c.EXPECT().SetList(gomock.Any(), query, views).Return(nil)
				return d, c
			},
			wantViews: views,
		},
		{
			name: "缓存不可用，当未命中处理",
			mock: func(ctrl *gomock.Controller) (dao.QuestionDAO, cache.QuestionListCache) {
				d := repomocks.NewMockQuestionDAO(ctrl)
				c := repomocks.NewMockQuestionListCache(ctrl)
				c.EXPECT().GetList(gomock.Any(), query).
					Return(nil, errors.New("redis 挂了"))
				d.EXPECT().List(gomock.Any(), gomock.Any()).Return(daoQuestions, nil)
				c.EXPECT().SetList(gomock.Any(), query, views).
					Return(errors.New("redis 还是挂的"))
				return d, c
			},
			wantViews: views,
		},
		{
			name: "库也挂了",
			mock: func(ctrl *gomock.Controller) (dao.QuestionDAO, cache.QuestionListCache) {
				d := repomocks.NewMockQuestionDAO(ctrl)
				c := repomocks.NewMockQuestionListCache(ctrl)
				c.EXPECT().GetList(gomock.Any(), query).Return(nil, cache.ErrKeyNotFound)
				d.EXPECT().List(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db 挂了"))
				return d, c
			},
			wantErr: errors.New("db 挂了"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			repo := NewCachedQuestionRepository(d, c)
			got, err := repo.ListViews(context.Background(), query)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantViews, got)
		})
	}
}

func TestCachedQuestionRepository_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := repomocks.NewMockQuestionDAO(ctrl)
	// 全量导出直连数据库，缓存上一次调用都不该有
	c := repomocks.NewMockQuestionListCache(ctrl)
	query := domain.ListQuery{
		OrderBy:        domain.OrderByCreatedAt,
		OrderDirection: domain.DirectionAsc,
		Limit:          20,
		AllSubdomains:  true,
	}
	d.EXPECT().List(gomock.Any(), dao.ListFilter{
		OrderColumn: "ctime",
		Limit:       20,
	}).Return([]dao.Question{
		{
			Id:   1,
			Text: "What is 2+2?",
			Choices: []dao.Choice{
				{Id: 12, Qid: 1, Text: "4", IsAnswer: true},
			},
		},
	}, nil)

	repo := NewCachedQuestionRepository(d, c)
	got, err := repo.ListAll(context.Background(), query)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	// 导出用的全量数据要带答案标记
	assert.True(t, got[0].Choices[0].IsAnswer)
}

func TestCachedQuestionRepository_toFilter(t *testing.T) {
	repo := &CachedQuestionRepository{}
	testCases := []struct {
		name  string
		query domain.ListQuery
		want  dao.ListFilter
	}{
		{
			name: "显式 subdomain 不用白名单",
			query: domain.ListQuery{
				OrderBy:        domain.OrderByCreatedAt,
				OrderDirection: domain.DirectionDesc,
				Limit:          20,
				Subdomain:      "golang",
			},
			want: dao.ListFilter{
				OrderColumn: "ctime",
				Desc:        true,
				Limit:       20,
				Subdomain:   "golang",
			},
		},
		{
			name: "没有 subdomain 落到默认白名单",
			query: domain.ListQuery{
				OrderBy:        domain.OrderByUpdatedAt,
				OrderDirection: domain.DirectionAsc,
				Limit:          20,
			},
			want: dao.ListFilter{
				OrderColumn: "utime",
				Limit:       20,
				Subdomains:  domain.DefaultSubdomains,
			},
		},
		{
			name: "全量导出不加分类条件",
			query: domain.ListQuery{
				OrderBy:        domain.OrderByCreatedAt,
				OrderDirection: domain.DirectionAsc,
				Limit:          20,
				AllSubdomains:  true,
			},
			want: dao.ListFilter{
				OrderColumn: "ctime",
				Limit:       20,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, repo.toFilter(tc.query))
		})
	}
}
