/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/mapper"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"
)

// Config is the decoded form of errcode.yml.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Mapper MapperConfig `mapstructure:"mapper"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MapperConfig struct {
	// Overrides maps an HTTP status to a gRPC code name, e.g. 404: NOT_FOUND.
	Overrides map[int]codes.Code `mapstructure:"overrides"`
	Prefixes  []PrefixRule       `mapstructure:"prefixes"`
}

type PrefixRule struct {
	Status int        `mapstructure:"status"`
	Prefix string     `mapstructure:"prefix"`
	Code   codes.Code `mapstructure:"code"`
}

// Options turns the mapper section into mapper options.
func (c MapperConfig) Options() []mapper.Option {
	opts := make([]mapper.Option, 0, len(c.Overrides)+len(c.Prefixes))
	for status, code := range c.Overrides {
		opts = append(opts, mapper.WithGRPCOverride(status, int(code)))
	}
	for _, r := range c.Prefixes {
		opts = append(opts, mapper.WithGRPCPrefix(r.Status, r.Prefix, int(r.Code)))
	}
	return opts
}

// Mapper builds the mapper described by the config.
func (c MapperConfig) Mapper() (apis.Mapper, error) {
	return mapper.New(c.Options()...)
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		StringToGRPCCodeHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func loadConfig(vip *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := vip.Unmarshal(cfg, viper.DecodeHook(decodeHooks())); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// StringToGRPCCodeHookFunc decodes gRPC code names ("NOT_FOUND",
// "NotFound", "not_found") and decimal strings into codes.Code.
func StringToGRPCCodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(codes.OK) {
			return data, nil
		}
		return parseGRPCCode(reflect.ValueOf(data).String())
	}
}

func parseGRPCCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		if n > uint64(codes.Unauthenticated) {
			return 0, fmt.Errorf("invalid grpc code: %s", s)
		}
		return codes.Code(n), nil
	}

	name := strings.ReplaceAll(s, "_", "")
	if strings.EqualFold(name, "cancelled") {
		return codes.Canceled, nil
	}
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid grpc code: %s", s)
}
