/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the portfolio server.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asgardeo/portfolio/internal/system/log"
)

const configFileRelativePath = "repository/conf/deployment.yaml"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the command line interface. Running without a subcommand starts the server.
func newRootCommand() *cobra.Command {
	var home string

	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), resolveHome(home))
		},
	}
	rootCmd.PersistentFlags().StringVar(&home, "home", "",
		"Path to the server home directory (defaults to the working directory)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), resolveHome(home))
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the portfolio tables and insert the sample portfolio data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), resolveHome(home))
		},
	})

	return rootCmd
}

// resolveHome returns the server home directory, falling back to the working directory.
func resolveHome(home string) string {
	logger := log.GetLogger()

	if home != "" {
		logger.Info("Using home directory from command line argument", log.String("home", home))
		return home
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// configFilePath returns the deployment configuration path under the home directory.
func configFilePath(home string) string {
	return filepath.Join(home, configFileRelativePath)
}
