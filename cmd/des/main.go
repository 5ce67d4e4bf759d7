// Command des encrypts and decrypts values with DES and verifies the
// implementation against known-answer vectors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dcrodman/des/internal/core"
)

// app holds the state shared by every subcommand once the config is loaded.
type app struct {
	configDir string
	cfg       *core.Config
	log       *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cases.Title(language.English).String(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "des",
		Short:         "DES block cipher and related tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configDir, "config", "c", "", "Path to the config/data directory")

	rootCmd.AddCommand(newEncryptCmd(a))
	rootCmd.AddCommand(newDecryptCmd(a))
	rootCmd.AddCommand(newScheduleCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newVectorsCmd(a))
	return rootCmd
}

func (a *app) init() error {
	cfg, err := core.LoadConfig(a.configDir)
	if err != nil {
		return err
	}
	logger, err := core.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

func printLine(w io.Writer, a ...interface{}) {
	_, _ = fmt.Fprintln(w, a...)
}
