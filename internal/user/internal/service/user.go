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

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/softwarequizzes/quizbank/internal/user/internal/domain"
	"github.com/softwarequizzes/quizbank/internal/user/internal/repository"
)

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrEmailTaken        = errors.New("Email already taken")
	ErrEmailTooShort     = errors.New("Email too short")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Resolve 把 bearer token 换成用户。
	// 固定的演示 token 不做任何密码学校验，直接解析成占位用户。
	Resolve(ctx context.Context, token string) (domain.User, error)
	// Login 密码登录，成功之后签发以邮箱为主体的 token
	Login(ctx context.Context, email, password string) (string, error)
	// Register 先查快路径集合再查库，邮箱占用就拒绝，不发 token
	Register(ctx context.Context, email, password string) (string, error)
}

type userService struct {
	repo  repository.UserRepository
	codec TokenCodec
}

func NewUserService(repo repository.UserRepository, codec TokenCodec) UserService {
	return &userService{
		repo:  repo,
		codec: codec,
	}
}

func (s *userService) Resolve(ctx context.Context, token string) (domain.User, error) {
	if token == domain.DemoToken {
		return s.repo.FindByEmail(ctx, domain.PlaceholderEmail)
	}
	claims, err := s.codec.Decode(token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}
	email, ok := claims["sub"].(string)
	if !ok {
		return domain.User{}, ErrInvalidToken
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return "", ErrIncorrectPassword
	}
	return s.codec.Encode(map[string]any{"sub": u.Email})
}

func (s *userService) Register(ctx context.Context, email, password string) (string, error) {
	if len(email) < 6 {
		return "", ErrEmailTooShort
	}
	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	_, err = s.repo.Create(ctx, domain.User{
		Email:    email,
		Password: string(hash),
	})
	// 并发注册同一个邮箱会撞唯一索引，同样按占用处理
	if errors.Is(err, repository.ErrUserDuplicate) {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", err
	}
	return s.codec.Encode(map[string]any{"sub": email})
}
