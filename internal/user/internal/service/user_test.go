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
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/softwarequizzes/quizbank/internal/user/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/user/internal/repository"
	repomocks "github.com/softwarequizzes/quizbank/internal/user/internal/repository/mocks"
)

const testSecret = "test-secret"

func TestUserService_Resolve(t *testing.T) {
	codec := NewJWTCodec(testSecret)
	goodToken, err := codec.Encode(map[string]any{"sub": "foo@example.com"})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		token    string
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "演示 token 换占位用户",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), domain.PlaceholderEmail).
					Return(domain.User{Id: 1, Email: domain.PlaceholderEmail}, nil)
				return repo
			},
			token:    domain.DemoToken,
			wantUser: domain.User{Id: 1, Email: domain.PlaceholderEmail},
		},
		{
			name: "合法 token",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "foo@example.com").
					Return(domain.User{Id: 2, Email: "foo@example.com"}, nil)
				return repo
			},
			token:    goodToken,
			wantUser: domain.User{Id: 2, Email: "foo@example.com"},
		},
		{
			name: "token 非法",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			token:   "garbage",
			wantErr: ErrInvalidToken,
		},
		{
			name: "token 合法但用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "foo@example.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			token:   goodToken,
			wantErr: ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), codec)
			u, err := svc.Resolve(context.Background(), tc.token)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	codec := NewJWTCodec(testSecret)
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		email    string
		password string
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "foo@example.com").
					Return(domain.User{Id: 2, Email: "foo@example.com", Password: string(hash)}, nil)
				return repo
			},
			email:    "foo@example.com",
			password: "right-password",
		},
		{
			name: "密码不对",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "foo@example.com").
					Return(domain.User{Id: 2, Email: "foo@example.com", Password: string(hash)}, nil)
				return repo
			},
			email:    "foo@example.com",
			password: "wrong-password",
			wantErr:  ErrIncorrectPassword,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			email:    "nobody@example.com",
			password: "whatever",
			wantErr:  ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), codec)
			token, err := svc.Login(context.Background(), tc.email, tc.password)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			claims, err := codec.Decode(token)
			require.NoError(t, err)
			assert.Equal(t, tc.email, claims["sub"])
		})
	}
}

func TestUserService_Register(t *testing.T) {
	codec := NewJWTCodec(testSecret)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		email    string
		password string
		wantErr  error
	}{
		{
			name: "注册成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().EmailTaken(gomock.Any(), "foo@example.com").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.Equal(t, "foo@example.com", u.Email)
						// 落库的必须是散列，不能是明文
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
						return 3, nil
					})
				return repo
			},
			email:    "foo@example.com",
			password: "123456",
		},
		{
			name: "邮箱太短",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			email:    "a@b",
			password: "123456",
			wantErr:  ErrEmailTooShort,
		},
		{
			name: "邮箱已被占用",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().EmailTaken(gomock.Any(), "foo@example.com").Return(true, nil)
				return repo
			},
			email:    "foo@example.com",
			password: "123456",
			wantErr:  ErrEmailTaken,
		},
		{
			name: "并发注册撞唯一索引",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().EmailTaken(gomock.Any(), "foo@example.com").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrUserDuplicate)
				return repo
			},
			email:    "foo@example.com",
			password: "123456",
			wantErr:  ErrEmailTaken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), codec)
			token, err := svc.Register(context.Background(), tc.email, tc.password)
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr != nil {
				assert.Empty(t, token)
				return
			}
			claims, err := codec.Decode(token)
			require.NoError(t, err)
			assert.Equal(t, tc.email, claims["sub"])
		})
	}
}
