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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/softwarequizzes/quizbank/internal/question"
	quemocks "github.com/softwarequizzes/quizbank/internal/question/mocks"
	"github.com/softwarequizzes/quizbank/internal/search/internal/repository"
	"github.com/softwarequizzes/quizbank/internal/search/internal/repository/dao"
	daomocks "github.com/softwarequizzes/quizbank/internal/search/internal/repository/mocks"
)

func TestSyncService_SyncAll(t *testing.T) {
	firstPage := func() []question.Question {
		qs := make([]question.Question, 0, syncPageSize)
		for i := int64(1); i <= syncPageSize; i++ {
			qs = append(qs, question.Question{
				Id:        i,
				Text:      "q",
				Subdomain: "python",
			})
		}
		return qs
	}()

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (question.Service, dao.QuestionDAO)
		wantErr error
	}{
		{
			name: "翻页直到空页",
			mock: func(ctrl *gomock.Controller) (question.Service, dao.QuestionDAO) {
				queSvc := quemocks.NewMockService(ctrl)
				d := daomocks.NewMockQuestionDAO(ctrl)
				queSvc.EXPECT().ListAll(gomock.Any(), question.ListQuery{
					OrderBy:        question.OrderByCreatedAt,
					OrderDirection: question.DirectionAsc,
					Limit:          syncPageSize,
					Offset:         0,
				}).Return(firstPage, nil)
				queSvc.EXPECT().ListAll(gomock.Any(), question.ListQuery{
					OrderBy:        question.OrderByCreatedAt,
					OrderDirection: question.DirectionAsc,
					Limit:          syncPageSize,
					Offset:         syncPageSize,
				}).Return([]question.Question{{
					Id:        int64(syncPageSize + 1),
					Text:      "What is 2+2?",
					Subdomain: "python",
					Choices: []question.Choice{
						{Id: 11, Text: "3"},
						{Id: 12, Text: "4", IsAnswer: true},
					},
				}}, nil)
				queSvc.EXPECT().ListAll(gomock.Any(), question.ListQuery{
					OrderBy:        question.OrderByCreatedAt,
					OrderDirection: question.DirectionAsc,
					Limit:          syncPageSize,
					Offset:         2 * syncPageSize,
				}).Return([]question.Question{}, nil)

				d.EXPECT().Input(gomock.Any(), gomock.Any()).Return(nil).Times(syncPageSize)
				d.EXPECT().Input(gomock.Any(), dao.Question{
					Id:        int64(syncPageSize + 1),
					Text:      "What is 2+2?",
					Subdomain: "python",
					Choices:   []string{"3", "4"},
				}).Return(nil)
				return queSvc, d
			},
		},
		{
			name: "写索引失败中断同步",
			mock: func(ctrl *gomock.Controller) (question.Service, dao.QuestionDAO) {
				queSvc := quemocks.NewMockService(ctrl)
				d := daomocks.NewMockQuestionDAO(ctrl)
				queSvc.EXPECT().ListAll(gomock.Any(), gomock.Any()).
					Return(firstPage[:1], nil)
				d.EXPECT().Input(gomock.Any(), gomock.Any()).
					Return(errors.New("es 挂了"))
				return queSvc, d
			},
			wantErr: errors.New("es 挂了"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			queSvc, d := tc.mock(ctrl)
			svc := NewSyncService(queSvc, repository.NewQuestionRepository(d))
			err := svc.SyncAll(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
