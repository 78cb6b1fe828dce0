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
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken 对调用方来说，格式错误、签名不对、过期都是同一个错误。
// 不区分原因，避免给外部探测签名留口子。
var ErrInvalidToken = errors.New("Invalid token")

//go:generate mockgen -source=./token.go -package=svcmocks -destination=../../mocks/token.mock.go TokenCodec
type TokenCodec interface {
	Encode(claims map[string]any) (string, error)
	Decode(token string) (jwt.MapClaims, error)
}

// JWTCodec 用共享密钥做 HS256 签名。
// 无状态：签发之后不落库，不支持吊销。
type JWTCodec struct {
	secret []byte
}

func NewJWTCodec(secret string) TokenCodec {
	return &JWTCodec{secret: []byte(secret)}
}

func (c *JWTCodec) Encode(claims map[string]any) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	return token.SignedString(c.secret)
}

func (c *JWTCodec) Decode(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
