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
	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	// Inspection
	cmd := &cobra.Command{
		Use:   "show file",
		Short: "Show the contents of a delimited file",
		Args:  cobra.ExactArgs(1),
		Run:   showFile}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "head file",
		Short: "Show the first rows of a delimited file",
		Args:  cobra.ExactArgs(1),
		Run:   headFile}
	cmd.Flags().IntP("rows", "n", 10, "number of rows to keep (default: 10)")
	root.AddCommand(cmd)

	// Transforms
	cmd = &cobra.Command{
		Use:   "select file column+",
		Short: "Keep only the named columns",
		Args:  cobra.MinimumNArgs(2),
		Run:   selectColumns}
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "filter file column value",
		Short: "Keep only the rows where column equals value",
		Args:  cobra.ExactArgs(3),
		Run:   filterRows}
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "count file column",
		Short: "Count rows per distinct value of the given column",
		Args:  cobra.ExactArgs(2),
		Run:   countRows}
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "distinct file column",
		Short: "Keep the first row per distinct value of the given column",
		Args:  cobra.ExactArgs(2),
		Run:   distinctRows}
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "arrange file column",
		Short: "Sort rows by the given column",
		Args:  cobra.ExactArgs(2),
		Run:   arrangeRows}
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	root.AddCommand(cmd)

	// Pipelines
	cmd = &cobra.Command{
		Use:   "survey file species",
		Short: "Count observations of the given species per group key",
		Args:  cobra.ExactArgs(2),
		Run:   surveyCounts}
	cmd.Flags().String("species-column", "species_id", "species column name")
	cmd.Flags().String("by", "year", "group key column name")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	root.AddCommand(cmd)
}

func main() {
	var root = &cobra.Command{Use: "tidycsv"}
	root.PersistentFlags().String("config", "~/.tidycsv/config", "config file")
	root.PersistentFlags().String("profile", "default", "config profile")
	root.PersistentFlags().BoolP("quiet", "q", false, "silence status output")
	root.PersistentFlags().String("format", "", "format results, 'json' or 'pretty' (default: pretty)")
	root.PersistentFlags().String("delim", "", "field delimiter (default: ',')")
	addCommands(root)
	root.Execute()
}
