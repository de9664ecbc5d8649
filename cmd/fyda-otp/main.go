/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the Fyda OTP verification server.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/anbesabank/fyda-otp/cmd/fyda-otp/startcmd"
	"github.com/anbesabank/fyda-otp/internal/pkg/log"
)

var logger = log.New("fyda-otp")
var Version string // will be embedded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "fyda-otp",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("FYDA_OTP_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run fyda-otp", log.WithError(err))
	}
}
