package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dcrodman/des/internal/core/bytes"
	"github.com/dcrodman/des/pkg/des"
)

func newScheduleCmd(a *app) *cobra.Command {
	var (
		flags keyFlags
		dump  bool
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Prints the 16 round subkeys derived from a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := flags.resolve(a)
			if err != nil {
				return err
			}
			schedule, err := des.NewKeySchedule(key)
			if err != nil {
				return fmt.Errorf("error deriving key schedule: %w", err)
			}

			if dump {
				spew.Fdump(cmd.OutOrStdout(), schedule)
				return nil
			}
			for i, subkey := range schedule {
				fmt.Fprintf(cmd.OutOrStdout(), "K%02d %s\n", i+1, bytes.FormatHex(subkey[:]))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the schedule structure instead of one subkey per line")
	return cmd
}
