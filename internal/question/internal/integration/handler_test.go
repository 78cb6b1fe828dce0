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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/softwarequizzes/quizbank/internal/pkg/middleware"
	baguwen "github.com/softwarequizzes/quizbank/internal/question"
	"github.com/softwarequizzes/quizbank/internal/question/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/question/internal/errs"
	"github.com/softwarequizzes/quizbank/internal/question/internal/web"
	"github.com/softwarequizzes/quizbank/internal/test"
	testioc "github.com/softwarequizzes/quizbank/internal/test/ioc"
	"github.com/softwarequizzes/quizbank/internal/user"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component

	adminToken string
	userToken  string
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	rdb := testioc.InitRedis()
	ec := testioc.InitCache()

	userModule := user.InitModule(s.db, rdb)
	queModule := baguwen.InitModule(s.db, ec)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	userModule.Hdl.PublicRoutes(server.Engine)
	server.Use(middleware.NewCheckIdentityMiddlewareBuilder(userModule.Svc).Build())
	queModule.Hdl.MemberRoutes(server.Engine)
	server.Use(middleware.NewCheckAdminMiddlewareBuilder().Build())
	queModule.AdminHdl.AdminRoutes(server.Engine)
	s.server = server

	s.adminToken = s.register(user.AdminEmail, "admin-pass")
	s.userToken = s.register("student@example.com", "student-pass")
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `auth_user`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `user_answers`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `choices`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `questions`").Error)
	require.NoError(s.T(), testioc.InitRedis().FlushDB(context.Background()).Err())
}

func (s *HandlerTestSuite) register(email, password string) string {
	req, err := http.NewRequest(http.MethodPost, "/register",
		iox.NewJSONReader(map[string]string{
			"email":    email,
			"password": password,
		}))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)

	var res test.Result[struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}]
	require.NoError(s.T(), json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(s.T(), "bearer", res.Data.TokenType)
	require.NotEmpty(s.T(), res.Data.AccessToken)
	return res.Data.AccessToken
}

func (s *HandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, path, iox.NewJSONReader(body))
	} else {
		req, err = http.NewRequest(method, path, nil)
	}
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) createQuestion(subdomain string) web.Question {
	t := s.T()
	recorder := s.do(http.MethodPost, "/questions", s.adminToken, map[string]string{
		"text":      "What is 2+2?",
		"subdomain": subdomain,
		"level":     "easy",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var created test.Result[web.Question]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	require.True(t, created.Data.Id > 0)
	require.Empty(t, created.Data.Choices)

	recorder = s.do(http.MethodPost,
		fmt.Sprintf("/questions/%d/choices", created.Data.Id),
		s.adminToken,
		map[string]any{
			"choices": []map[string]any{
				{"text": "3", "is_answer": false},
				{"text": "4", "is_answer": true},
			},
		})
	require.Equal(t, http.StatusOK, recorder.Code)
	var full test.Result[web.Question]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &full))
	require.Len(t, full.Data.Choices, 2)
	return full.Data
}

func (s *HandlerTestSuite) listQuestions(token, subdomain string) []domain.QuestionView {
	t := s.T()
	recorder := s.do(http.MethodGet, "/questions?subdomain="+subdomain, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var res test.Result[[]domain.QuestionView]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res.Data
}

func (s *HandlerTestSuite) TestAnswerFlow() {
	t := s.T()
	que := s.createQuestion("python")
	wrongId, correctId := que.Choices[0].Id, que.Choices[1].Id

	// 演示 token 只能看到共享投影
	views := s.listQuestions(user.DemoToken, "python")
	require.Len(t, views, 1)
	require.Nil(t, views[0].UserAnswerId)
	require.Nil(t, views[0].CorrectAnswerId)
	// 投影里没有答案标记
	require.Len(t, views[0].Choices, 2)

	// 答对
	recorder := s.do(http.MethodPost, "/answers", s.userToken, map[string]int64{
		"question_id": que.Id,
		"choice_id":   correctId,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var submitRes test.Result[web.SubmitResp]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &submitRes))
	require.True(t, submitRes.Data.Correct)
	require.Equal(t, correctId, submitRes.Data.AnswerId)

	// 登录用户能看到自己的作答和正确答案
	views = s.listQuestions(s.userToken, "python")
	require.Len(t, views, 1)
	require.NotNil(t, views[0].UserAnswerId)
	require.Equal(t, correctId, *views[0].UserAnswerId)
	require.NotNil(t, views[0].CorrectAnswerId)
	require.Equal(t, correctId, *views[0].CorrectAnswerId)

	// 重复提交，最近一次胜出
	recorder = s.do(http.MethodPost, "/answers", s.userToken, map[string]int64{
		"question_id": que.Id,
		"choice_id":   wrongId,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &submitRes))
	require.False(t, submitRes.Data.Correct)

	views = s.listQuestions(s.userToken, "python")
	require.Len(t, views, 1)
	require.Equal(t, wrongId, *views[0].UserAnswerId)
	require.Equal(t, correctId, *views[0].CorrectAnswerId)

	// 演示 token 还是什么都看不到
	views = s.listQuestions(user.DemoToken, "python")
	require.Len(t, views, 1)
	require.Nil(t, views[0].UserAnswerId)
	require.Nil(t, views[0].CorrectAnswerId)
}

func (s *HandlerTestSuite) TestSubmitValidation() {
	t := s.T()
	que := s.createQuestion("sql")

	// 题目不存在
	recorder := s.do(http.MethodPost, "/answers", s.userToken, map[string]int64{
		"question_id": 99999,
		"choice_id":   que.Choices[0].Id,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var res test.Result[any]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(t, errs.QuestionNotFound.Code, res.Code)

	// 选项不存在
	recorder = s.do(http.MethodPost, "/answers", s.userToken, map[string]int64{
		"question_id": que.Id,
		"choice_id":   99999,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(t, errs.ChoiceNotFound.Code, res.Code)

	// 整批有一条不合法，一条都不落库
	recorder = s.do(http.MethodPost, "/answers/bulk", s.userToken, map[string]any{
		"answers": []map[string]int64{
			{"question_id": que.Id, "choice_id": que.Choices[0].Id},
			{"question_id": 99999, "choice_id": que.Choices[1].Id},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(t, errs.BulkSubmitFailed.Code, res.Code)
	var count int64
	require.NoError(t, s.db.Table("user_answers").Count(&count).Error)
	require.Equal(t, int64(0), count)

	// 整批合法
	recorder = s.do(http.MethodPost, "/answers/bulk", s.userToken, map[string]any{
		"answers": []map[string]int64{
			{"question_id": que.Id, "choice_id": que.Choices[0].Id},
			{"question_id": que.Id, "choice_id": que.Choices[1].Id},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(t, 0, res.Code)
	require.NoError(t, s.db.Table("user_answers").Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func (s *HandlerTestSuite) TestAdminGuard() {
	t := s.T()
	body := map[string]string{
		"text":      "What is 2+2?",
		"subdomain": "python",
		"level":     "easy",
	}

	// 没带 token
	recorder := s.do(http.MethodPost, "/questions", "", body)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 普通用户
	recorder = s.do(http.MethodPost, "/questions", s.userToken, body)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	// 演示 token 的占位用户
	recorder = s.do(http.MethodPost, "/questions", user.DemoToken, body)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	// 管理员但参数不合法
	recorder = s.do(http.MethodPost, "/questions", s.adminToken, map[string]string{
		"text":      "What is 2+2?",
		"subdomain": "python",
		"level":     "bogus",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var res test.Result[any]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(t, errs.InvalidInput.Code, res.Code)
}

func (s *HandlerTestSuite) TestListFilters() {
	t := s.T()
	s.createQuestion("python")
	s.createQuestion("golang")

	// golang 不在默认白名单里，不指定 subdomain 看不到
	views := s.listQuestions(s.userToken, "")
	require.Len(t, views, 1)

	// 显式指定就能看到
	views = s.listQuestions(s.userToken, "golang")
	require.Len(t, views, 1)

	// 非法排序字段直接拒绝
	recorder := s.do(http.MethodGet, "/questions?order_by=password", s.userToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var res test.Result[any]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Equal(t, errs.InvalidInput.Code, res.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
