package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"textconv/src/core/domain"
	"textconv/src/core/usecase"
	"textconv/src/infra/config"
)

type convertOptions struct {
	bits int
	json bool
}

// convertOutput is the --json shape of the convert command.
type convertOutput struct {
	Input  string `json:"input"`
	Bits   int    `json:"bits"`
	Binary string `json:"binary"`
	Morse  string `json:"morse"`
}

func newConvertCommand(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert text given as arguments or on stdin",
		Example: `  textconv convert Hi!
  echo "SOS" | textconv convert --json
  textconv convert --bits 16 "中文"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bits") {
				opts.bits = cfg.Convert.Bits
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			svc := usecase.NewConvertService(nil, nil)
			conv, err := svc.Convert(cmd.Context(), text, opts.bits)
			if err != nil {
				return err
			}
			return printConversion(cmd.OutOrStdout(), conv, opts.json)
		},
	}

	cmd.Flags().IntVarP(&opts.bits, "bits", "b", 8, "binary token width (defaults to convert.bits from config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	return cmd
}

func printConversion(w io.Writer, conv *domain.Conversion, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(convertOutput{
			Input:  conv.Input,
			Bits:   conv.Bits,
			Binary: conv.Binary,
			Morse:  conv.Morse,
		})
	}

	_, err := fmt.Fprintf(w, "输入原文：%s\n\n%d位二进制：\n%s\n\n摩斯密码：\n%s\n",
		conv.Input, conv.Bits, conv.Binary, conv.Morse)
	return err
}
