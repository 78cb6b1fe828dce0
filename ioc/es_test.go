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

package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitES_未配置时不建连接(t *testing.T) {
	// 没有 es.url 时返回 nil，不能因为连不上 ES 把进程拍死
	assert.Nil(t, InitES())
}

func TestInitCronJobs_没有搜索模块就没有定时任务(t *testing.T) {
	assert.Empty(t, initCronJobs(nil))
}
