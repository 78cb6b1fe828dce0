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

package domain

import "github.com/pkg/errors"

var (
	ErrInvalidOrderBy   = errors.New("不支持的排序字段")
	ErrInvalidDirection = errors.New("不支持的排序方向")
	ErrInvalidLevel     = errors.New("不支持的难度")
)

// DefaultSubdomains 是面向 C 端的默认分类白名单。
// 没有显式指定 subdomain 并且没有要求全量的时候，列表只在这个范围内出题。
var DefaultSubdomains = []string{"python", "javascript", "sql"}

type OrderDirection string

const (
	DirectionAsc  OrderDirection = "asc"
	DirectionDesc OrderDirection = "desc"
)

// OrderBy 是封闭的排序字段集合。
// 对外的字段名不直接透传给 SQL，由 DAO 映射到列名。
type OrderBy string

const (
	OrderByCreatedAt OrderBy = "created_at"
	OrderByUpdatedAt OrderBy = "updated_at"
	OrderById        OrderBy = "id"
	OrderBySubdomain OrderBy = "subdomain"
	OrderByLevel     OrderBy = "level"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ListQuery 是列表接口的全部过滤条件。
// 缓存 key 由这里的每一个字段共同决定。
type ListQuery struct {
	OrderBy        OrderBy
	OrderDirection OrderDirection
	Limit          int
	Offset         int
	// 为空表示用默认分类白名单
	Subdomain string
	// 为空表示不过滤难度
	Level DifficultyLevel
	// 内部导出任务用，绕过默认分类白名单
	AllSubdomains bool
}

// Normalize 填默认值并且校验枚举。
// 非法的排序字段直接拒绝，不会透传到 SQL。
func (q ListQuery) Normalize() (ListQuery, error) {
	if q.OrderBy == "" {
		q.OrderBy = OrderByCreatedAt
	}
	switch q.OrderBy {
	case OrderByCreatedAt, OrderByUpdatedAt, OrderById, OrderBySubdomain, OrderByLevel:
	default:
		return q, ErrInvalidOrderBy
	}
	if q.OrderDirection == "" {
		q.OrderDirection = DirectionDesc
	}
	if q.OrderDirection != DirectionAsc && q.OrderDirection != DirectionDesc {
		return q, ErrInvalidDirection
	}
	if q.Level != "" && !q.Level.Valid() {
		return q, ErrInvalidLevel
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q, nil
}
