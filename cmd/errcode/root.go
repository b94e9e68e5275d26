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
	"errors"
	"fmt"
	"os"
	"strings"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every subcommand needs once the config is loaded.
type app struct {
	vip    *viper.Viper
	cfg    *Config
	mapper apis.Mapper
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	a := &app{vip: viper.New()}

	cmd := &cobra.Command{
		Use:          "errcode",
		Short:        "Inspect, rewrite and decode packed error codes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, cfgFile)
		},
	}

	// Flags
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "", "", "Config file (default \"errcode.yml\")")
	cmd.PersistentFlags().StringP("log-level", "", "warn", "Log level, can be one of: debug, info, warn, error, off")
	cmd.PersistentFlags().StringP("log-format", "", "text", "Log format, can be one of: text, json")
	_ = a.vip.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = a.vip.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))

	// Add Subcommands
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newRewriteCmd(a))
	cmd.AddCommand(newDecodeCmd(a))

	// Set default output
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	return cmd
}

func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		a.vip.SetConfigFile(cfgFile)
	} else {
		a.vip.SetConfigName("errcode")
		a.vip.AddConfigPath(".")
		a.vip.AddConfigPath("$HOME")
	}

	a.vip.SetEnvPrefix("errcode")
	a.vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.vip.AutomaticEnv()

	if err := a.vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := loadConfig(a.vip)
	if err != nil {
		return err
	}

	lvl, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := log.NewLogger(cmd.ErrOrStderr(), lvl, cfg.Log.Format)
	if err != nil {
		return err
	}
	errcode.SetLogger(logger)

	m, err := cfg.Mapper.Mapper()
	if err != nil {
		return fmt.Errorf("mapper config: %w", err)
	}

	a.cfg = cfg
	a.mapper = m
	return nil
}
