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

package job

import (
	"context"

	"github.com/softwarequizzes/quizbank/internal/search/internal/service"
)

// SyncJob 挂在定时任务上周期性全量重建索引
type SyncJob struct {
	svc service.SyncService
}

func NewSyncJob(svc service.SyncService) *SyncJob {
	return &SyncJob{svc: svc}
}

func (j *SyncJob) Name() string {
	return "question_es_sync"
}

func (j *SyncJob) Run(ctx context.Context) error {
	return j.svc.SyncAll(ctx)
}
