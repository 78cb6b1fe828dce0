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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./answer.go -destination=../mocks/answer_dao.mock.go -package=repomocks UserAnswerDAO
type UserAnswerDAO interface {
	Insert(ctx context.Context, ua UserAnswer) (int64, error)
	// InsertBatch 在一个事务里写入，任何一条失败整批回滚
	InsertBatch(ctx context.Context, uas []UserAnswer) error
	// LatestByUser 返回该用户在这些题目上最近一次提交的选项。
	// 重复提交会产生多行，最近的一条胜出。
	LatestByUser(ctx context.Context, uid int64, qids []int64) (map[int64]int64, error)
}

type GORMUserAnswerDAO struct {
	db *egorm.Component
}

func NewGORMUserAnswerDAO(db *egorm.Component) UserAnswerDAO {
	return &GORMUserAnswerDAO{db: db}
}

func (g *GORMUserAnswerDAO) Insert(ctx context.Context, ua UserAnswer) (int64, error) {
	now := time.Now().UnixMilli()
	ua.Ctime = now
	ua.Utime = now
	err := g.db.WithContext(ctx).Create(&ua).Error
	return ua.Id, err
}

func (g *GORMUserAnswerDAO) InsertBatch(ctx context.Context, uas []UserAnswer) error {
	now := time.Now().UnixMilli()
	for i := range uas {
		uas[i].Ctime = now
		uas[i].Utime = now
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&uas).Error
	})
}

func (g *GORMUserAnswerDAO) LatestByUser(ctx context.Context, uid int64, qids []int64) (map[int64]int64, error) {
	if len(qids) == 0 {
		return map[int64]int64{}, nil
	}
	var uas []UserAnswer
	err := g.db.WithContext(ctx).
		Select("question_id", "choice_id").
		Where("uid = ? AND question_id IN ?", uid, qids).
		Order("id ASC").
		Find(&uas).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(qids))
	for _, ua := range uas {
		// 按 id 升序遍历，后写的覆盖先写的，留下最近一次
		res[ua.QuestionId] = ua.ChoiceId
	}
	return res, nil
}

type UserAnswer struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	Uid        int64 `gorm:"index"`
	QuestionId int64 `gorm:"index"`
	ChoiceId   int64
	Ctime      int64
	Utime      int64
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
