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

package config

import "time"

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []Topic  `yaml:"topics"`
}

type Topic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type SessionConfig struct {
	SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration          time.Duration `yaml:"expiration"`
	Cookie              CookieConfig  `yaml:"cookie"`
}

type CookieConfig struct {
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
}
