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
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(&User{})
	if err != nil {
		return err
	}
	return seedPlaceholder(db)
}

// seedPlaceholder 保证占位用户记录存在。
// 密码留空哈希，没有人能用密码登录这个账号，只能走演示 token。
func seedPlaceholder(db *gorm.DB) error {
	now := time.Now().UnixMilli()
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&User{
			Email:    "placeholder@softwarequizzes.com",
			Password: "",
			Ctime:    now,
			Utime:    now,
		}).Error
}
