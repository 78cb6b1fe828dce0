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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound     = gorm.ErrRecordNotFound
	ErrQuestionNotFound = errors.New("题目不存在")
)

// ListFilter 是列表查询的全部条件。
// OrderColumn 只会是 repository 映射出来的列名，不接受外部输入。
type ListFilter struct {
	OrderColumn string
	Desc        bool
	Limit       int
	Offset      int
	// 二选一：Subdomain 精确过滤，否则落到 Subdomains 白名单。
	// 两个都为空表示全量（导出任务用）。
	Subdomain  string
	Subdomains []string
	Level      string
}

//go:generate mockgen -source=./question.go -destination=../mocks/question_dao.mock.go -package=repomocks QuestionDAO
type QuestionDAO interface {
	List(ctx context.Context, f ListFilter) ([]Question, error)
	GetByID(ctx context.Context, id int64) (Question, error)
	Create(ctx context.Context, q Question) (int64, error)
	// CreateChoices 父题目不存在的时候返回 ErrQuestionNotFound
	CreateChoices(ctx context.Context, qid int64, cs []Choice) error
	ChoiceByID(ctx context.Context, id int64) (Choice, error)
	// CorrectChoiceIds 返回每道题第一个标记为正确答案的选项。
	// 数据层面没有"恰好一个正确答案"的约束，多个标记时取 id 最小的。
	CorrectChoiceIds(ctx context.Context, qids []int64) (map[int64]int64, error)
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

// preloadChoices 固定按主键升序带出选项，一次往返，避免 N+1
func preloadChoices(db *gorm.DB) *gorm.DB {
	return db.Preload("Choices", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	})
}

func (g *GORMQuestionDAO) List(ctx context.Context, f ListFilter) ([]Question, error) {
	db := preloadChoices(g.db.WithContext(ctx))
	if f.Subdomain != "" {
		db = db.Where("subdomain = ?", f.Subdomain)
	} else if len(f.Subdomains) > 0 {
		db = db.Where("subdomain IN ?", f.Subdomains)
	}
	if f.Level != "" {
		db = db.Where("level = ?", f.Level)
	}
	order := f.OrderColumn
	if f.Desc {
		order += " DESC"
	}
	var qs []Question
	err := db.Order(order).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&qs).Error
	return qs, err
}

func (g *GORMQuestionDAO) GetByID(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := preloadChoices(g.db.WithContext(ctx)).
		Where("id = ?", id).First(&q).Error
	return q, err
}

func (g *GORMQuestionDAO) Create(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Create(&q).Error
	return q.Id, err
}

func (g *GORMQuestionDAO) CreateChoices(ctx context.Context, qid int64, cs []Choice) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q Question
		err := tx.Select("id").Where("id = ?", qid).First(&q).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		if err != nil {
			return err
		}
		for i := range cs {
			cs[i].Qid = qid
			cs[i].Ctime = now
			cs[i].Utime = now
		}
		return tx.Create(&cs).Error
	})
}

func (g *GORMQuestionDAO) ChoiceByID(ctx context.Context, id int64) (Choice, error) {
	var c Choice
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMQuestionDAO) CorrectChoiceIds(ctx context.Context, qids []int64) (map[int64]int64, error) {
	if len(qids) == 0 {
		return map[int64]int64{}, nil
	}
	var cs []Choice
	err := g.db.WithContext(ctx).
		Select("id", "qid").
		Where("qid IN ? AND is_answer = ?", qids, true).
		Order("id ASC").
		Find(&cs).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(qids))
	for _, c := range cs {
		// 取 id 最小的那个
		if _, ok := res[c.Qid]; !ok {
			res[c.Qid] = c.Id
		}
	}
	return res, nil
}

type Question struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Text string `gorm:"type:text"`
	// 代码片段，可以为空
	Snippet sql.NullString `gorm:"type:text"`
	// 答案解析，可以为空
	Explanation sql.NullString `gorm:"type:text"`
	// 过滤高频字段，加索引
	Subdomain string `gorm:"type:varchar(20);index"`
	Level     string `gorm:"type:varchar(10)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64

	Choices []Choice `gorm:"foreignKey:Qid;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "questions"
}

type Choice struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Qid      int64  `gorm:"index"`
	Text     string `gorm:"type:text"`
	IsAnswer bool
	Ctime    int64
	Utime    int64
}

func (Choice) TableName() string {
	return "choices"
}
