package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/dcrodman/des/internal/core/data"
	"github.com/dcrodman/des/internal/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	var builtinOnly bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Checks the cipher against the built-in and stored known-answer vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := &validation.Suite{Logger: a.log}
			if !builtinOnly {
				db, err := a.openDB()
				if err != nil {
					return err
				}
				defer a.closeDB(db)
				suite.DB = db
			}

			report, err := suite.Run()
			if err != nil {
				return err
			}

			failures := report.Failures()
			fmt.Fprintf(cmd.OutOrStdout(), "%d checks, %d failed\n", len(report.Results), len(failures))
			if len(failures) > 0 {
				return fmt.Errorf("validation failed: %s", failures[0].Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&builtinOnly, "builtin-only", false, "Skip the vectors stored in the database")
	return cmd
}

func (a *app) openDB() (*gorm.DB, error) {
	return data.Open(a.cfg, a.log)
}

func (a *app) closeDB(db *gorm.DB) {
	if err := data.Close(db); err != nil {
		a.log.Warn(err)
	}
}
