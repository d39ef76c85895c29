// Copyright 2023 The tidycsv authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"tidycsv/table"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

// Represents the state used when processing a command.
type Action struct {
	cmd   *cobra.Command
	quiet bool
	cfg   *table.Config
	start time.Time
}

func newAction(cmd *cobra.Command) *Action {
	result := &Action{cmd: cmd, start: time.Now()}
	result.quiet = result.getBool("quiet")
	return result
}

func (a *Action) Config() *table.Config {
	if a.cfg == nil {
		a.cfg = a.loadConfig()
	}
	return a.cfg
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getInt(name string) int {
	result, _ := a.cmd.Flags().GetInt(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) loadConfig() *table.Config {
	cfg := table.Config{Delim: ",", Format: "pretty"}
	fname := a.getString("config")
	profile := a.getString("profile")
	if err := table.LoadConfigFile(fname, profile, &cfg); err != nil {
		// A missing config file is fine, everything has a default.
		if !table.IsNotExist(err) {
			fmt.Printf("\n%s\n", strings.TrimRight(err.Error(), "\r\n"))
		}
	}
	if v := a.getString("delim"); v != "" {
		cfg.Delim = v
	}
	if v := a.getString("format"); v != "" {
		cfg.Format = v
	}
	return &cfg
}

// Returns read/write options from config and flags.
func (a *Action) options() *table.Options {
	cfg := a.Config()
	if cfg.Delim == "" {
		return nil
	}
	delim := []rune(cfg.Delim)
	if len(delim) != 1 {
		fatal("delim must be a single character, got '%s'", cfg.Delim)
	}
	return &table.Options{Delim: delim[0]}
}

func isNil(v interface{}) bool {
	switch v.(type) {
	case string:
		return false
	}
	return v == nil || reflect.ValueOf(v).IsNil()
}

func rtrimEol(value string) string {
	return strings.TrimRight(value, "\r\n")
}

func (a *Action) showValue(v interface{}) {
	if isNil(v) {
		return
	}
	if a.Config().Format == "pretty" {
		if s, ok := v.(table.Showable); ok {
			s.Show()
			return
		}
	}
	table.ShowJSON(v, 2)
}

func (a *Action) Append(format string, args ...interface{}) *Action {
	if a.quiet {
		return a
	}
	fmt.Printf(format, args...)
	return a
}

// Show the action banner message.
func (a *Action) Start(format string, args ...interface{}) *Action {
	if a.quiet {
		return a
	}
	var msg string
	msg = fmt.Sprintf(format, args...)
	msg = fmt.Sprintf("%s .. ", msg)
	fmt.Print(msg)
	return a
}

// Update the action banner and exit.
func (a *Action) Exit(result interface{}, err error) {
	delta := time.Since(a.start).Seconds()
	if err != nil {
		a.Append("(%.1fs)\n", delta)
		log.Error(rtrimEol(err.Error()))
		os.Exit(1)
	}
	a.Append("Ok (%.1fs)\n", delta)
	a.showValue(result)
	os.Exit(0)
}

// Write the result to the output file when one was given, otherwise show it.
func (a *Action) finish(t *table.Table, err error) {
	fname := a.getString("output")
	if err == nil && fname != "" {
		err = table.WriteFile(fname, t, a.options())
		t = nil
	}
	a.Exit(t, err)
}

//
// Inspection
//

func showFile(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	fname := args[0]
	action.Start("Show '%s'", fname)
	t, err := table.ReadFile(fname, action.options())
	action.Exit(t, err)
}

func headFile(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	fname := args[0]
	n := action.getInt("rows")
	action.Start("Head '%s' n=%d", fname, n)
	t, err := table.Read(fname, action.options()).Head(n).Table()
	action.Exit(t, err)
}

//
// Transforms
//

func selectColumns(cmd *cobra.Command, args []string) {
	// assert len(args) >= 2
	action := newAction(cmd)
	fname := args[0]
	names := args[1:]
	action.Start("Select %s (%s)", strings.Join(names, ", "), fname)
	t, err := table.Read(fname, action.options()).Select(names...).Table()
	action.finish(t, err)
}

func filterRows(cmd *cobra.Command, args []string) {
	// assert len(args) == 3
	action := newAction(cmd)
	fname, column, value := args[0], args[1], args[2]
	action.Start("Filter %s == '%s' (%s)", column, value, fname)
	t, err := table.Read(fname, action.options()).Where(column, value).Table()
	action.finish(t, err)
}

func countRows(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	fname, column := args[0], args[1]
	action.Start("Count by %s (%s)", column, fname)
	t, err := table.Read(fname, action.options()).CountBy(column).Table()
	action.finish(t, err)
}

func distinctRows(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	fname, column := args[0], args[1]
	action.Start("Distinct %s (%s)", column, fname)
	t, err := table.Read(fname, action.options()).Distinct(column).Table()
	action.finish(t, err)
}

func arrangeRows(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	fname, column := args[0], args[1]
	action.Start("Arrange by %s (%s)", column, fname)
	t, err := table.Read(fname, action.options()).Arrange(column).Table()
	action.finish(t, err)
}

//
// Pipelines
//

func surveyCounts(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	fname, species := args[0], args[1]
	speciesCol := action.getString("species-column")
	key := action.getString("by")
	action.Start("Count '%s' observations by %s (%s)", species, key, fname)
	t, err := table.Read(fname, action.options()).
		Select(speciesCol, key).
		Where(speciesCol, species).
		CountBy(key).
		Table()
	action.finish(t, err)
}
