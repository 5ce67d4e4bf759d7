package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcrodman/des/internal/core/bytes"
	"github.com/dcrodman/des/pkg/des"
)

// keyFlags selects the key for commands that need one.
type keyFlags struct {
	key    string
	keyHex string
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "Key as 8 ASCII characters")
	cmd.Flags().StringVar(&f.keyHex, "key-hex", "", "Key as 16 hex digits")
}

// resolve returns the key from the flags, falling back to cipher.key.
func (f *keyFlags) resolve(a *app) ([]byte, error) {
	switch {
	case f.key != "" && f.keyHex != "":
		return nil, errors.New("--key and --key-hex are mutually exclusive")
	case f.keyHex != "":
		key, err := bytes.ParseHex(f.keyHex)
		if err != nil {
			return nil, fmt.Errorf("error parsing key: %w", err)
		}
		return key, nil
	case f.key != "":
		return []byte(f.key), nil
	case a.cfg.Cipher.Key != "":
		return []byte(a.cfg.Cipher.Key), nil
	default:
		return nil, errors.New("no key given; use --key, --key-hex or set cipher.key")
	}
}

type cipherFlags struct {
	keyFlags
	hex      bool
	encoding string
}

func (f *cipherFlags) register(cmd *cobra.Command, hexUsage string) {
	f.keyFlags.register(cmd)
	cmd.Flags().BoolVar(&f.hex, "hex", false, hexUsage)
	cmd.Flags().StringVarP(&f.encoding, "output", "o", "", "Ciphertext encoding: hex or base64 (default cipher.output_encoding)")
}

func (f *cipherFlags) ciphertextEncoding(a *app) string {
	if f.encoding != "" {
		return f.encoding
	}
	return a.cfg.Cipher.OutputEncoding
}

func newEncryptCmd(a *app) *cobra.Command {
	var flags cipherFlags
	cmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Encrypts a value in ECB mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := flags.resolve(a)
			if err != nil {
				return err
			}

			plaintext := []byte(args[0])
			if flags.hex {
				if plaintext, err = bytes.ParseHex(args[0]); err != nil {
					return fmt.Errorf("error parsing plaintext: %w", err)
				}
			}

			ciphertext, err := des.Cipher(plaintext, key, des.Encrypt)
			if err != nil {
				return fmt.Errorf("error encrypting: %w", err)
			}
			a.log.Debugf("ciphertext:\n%s", bytes.Dump(ciphertext))

			encoded, err := bytes.Encode(ciphertext, flags.ciphertextEncoding(a))
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
	flags.register(cmd, "Plaintext is given as hex")
	return cmd
}

func newDecryptCmd(a *app) *cobra.Command {
	var flags cipherFlags
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypts a value produced by encrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := flags.resolve(a)
			if err != nil {
				return err
			}

			ciphertext, err := bytes.Decode(args[0], flags.ciphertextEncoding(a))
			if err != nil {
				return fmt.Errorf("error parsing ciphertext: %w", err)
			}

			plaintext, err := des.Cipher(ciphertext, key, des.Decrypt)
			if errors.Is(err, des.ErrCorruptData) {
				return fmt.Errorf("error decrypting, wrong key or damaged ciphertext: %w", err)
			} else if err != nil {
				return fmt.Errorf("error decrypting: %w", err)
			}
			a.log.Debugf("plaintext:\n%s", bytes.Dump(plaintext))

			if flags.hex {
				printLine(cmd.OutOrStdout(), bytes.FormatHex(plaintext))
			} else {
				printLine(cmd.OutOrStdout(), string(plaintext))
			}
			return nil
		},
	}
	flags.register(cmd, "Print the plaintext as hex")
	return cmd
}
