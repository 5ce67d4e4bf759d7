package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dcrodman/des/internal/core/data"
)

func newVectorsCmd(a *app) *cobra.Command {
	vectorsCmd := &cobra.Command{
		Use:   "vectors",
		Short: "Manages the stored known-answer vectors",
	}
	vectorsCmd.AddCommand(newVectorsAddCmd(a))
	vectorsCmd.AddCommand(newVectorsListCmd(a))
	vectorsCmd.AddCommand(newVectorsDeleteCmd(a))
	return vectorsCmd
}

func newVectorsAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [key] [plaintext] [ciphertext]",
		Short: "Stores a single block vector; missing values are prompted for",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer a.closeDB(db)

			in := bufio.NewScanner(cmd.InOrStdin())
			vector := &data.Vector{}
			vector.Name, args = popArg(cmd.OutOrStdout(), in, args, "Name")
			vector.Key, args = popArg(cmd.OutOrStdout(), in, args, "Key (hex)")
			vector.Plaintext, args = popArg(cmd.OutOrStdout(), in, args, "Plaintext (hex)")
			vector.Ciphertext, _ = popArg(cmd.OutOrStdout(), in, args, "Ciphertext (hex)")

			existing, err := data.FindVectorByName(db, vector.Name)
			if err != nil {
				return fmt.Errorf("error looking up vector: %w", err)
			} else if existing != nil {
				return fmt.Errorf("vector '%s' already exists", vector.Name)
			}

			if err := data.CreateVector(db, vector); err != nil {
				return fmt.Errorf("error creating vector: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created vector '%s' (ID: %d)\n", vector.Name, vector.ID)
			return nil
		},
	}
}

func newVectorsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the stored vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer a.closeDB(db)

			vectors, err := data.FindVectors(db)
			if err != nil {
				return fmt.Errorf("error listing vectors: %w", err)
			}
			for _, v := range vectors {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s key=%s plaintext=%s ciphertext=%s\n", v.Name, v.Key, v.Plaintext, v.Ciphertext)
			}
			return nil
		},
	}
}

func newVectorsDeleteCmd(a *app) *cobra.Command {
	var permanent bool
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Deletes a stored vector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer a.closeDB(db)

			name, _ := popArg(cmd.OutOrStdout(), bufio.NewScanner(cmd.InOrStdin()), args, "Name")
			if permanent {
				err = data.PermanentlyDeleteVector(db, name)
			} else {
				err = data.DeleteVector(db, name)
			}
			if err != nil {
				return fmt.Errorf("error deleting vector: %w", err)
			}
			printLine(cmd.OutOrStdout(), "deleted vector")
			return nil
		},
	}
	cmd.Flags().BoolVar(&permanent, "permanent", false, "Permanently delete the vector (as opposed to a soft delete)")
	return cmd
}

// popArg returns the first argument, or prompts for it when args is empty.
func popArg(w io.Writer, in *bufio.Scanner, args []string, prompt string) (string, []string) {
	if len(args) > 0 {
		return args[0], args[1:]
	}

	fmt.Fprintf(w, "%s: ", prompt)
	in.Scan()
	return in.Text(), args
}
