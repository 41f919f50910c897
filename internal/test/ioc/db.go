// Copyright 2023 ecodeclub
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

package testioc

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/ecocredit/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

// InitDB 集成测试都在 internal/<模块>/internal/integration 下执行
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		ioc.WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
		db = egorm.Load("mysql").Build()
	})
	return db
}

func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "../../../../config/local.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}
