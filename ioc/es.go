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
	"fmt"

	"github.com/gotomicro/ego/core/econf"
	"github.com/olivere/elastic/v7"
)

// InitES 是可选依赖，没有配置 es.url 时返回 nil，
// 上层据此跳过整个搜索模块的装配。
func InitES() *elastic.Client {
	if econf.GetString("es.url") == "" {
		return nil
	}
	type Config struct {
		Url      string `yaml:"url"`
		Sniff    bool   `yaml:"sniff"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	}
	var cfg Config
	err := econf.UnmarshalKey("es", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 ES 配置失败 %w", err))
	}
	opts := []elastic.ClientOptionFunc{
		elastic.SetURL(cfg.Url),
		elastic.SetSniff(cfg.Sniff),
	}
	if cfg.Username != "" {
		opts = append(opts, elastic.SetBasicAuth(cfg.Username, cfg.Password))
	}
	client, err := elastic.NewClient(opts...)
	if err != nil {
		panic(fmt.Errorf("ES 连接失败 %w", err))
	}
	return client
}
