package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/api"
	"kgeyst.com/hfdemo/pkg/inference/domain"
	"kgeyst.com/hfdemo/pkg/inference/domain/models"
)

func newRunCmd(opts *options) *cobra.Command {
	var modelQuery, image, format string
	c := &cobra.Command{
		Use:   "run [--model MODEL] [--image PATH|URL] [TEXT...]",
		Short: "Run a model once and print the result",
		Example: `  infer run "I love this"
  infer run --model 2 --image ./cat.png
  infer run --image https://example.com/cat.jpg --format text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "text" {
				return fmt.Errorf("unknown format %q, expected json or text", format)
			}
			text := strings.TrimSpace(strings.Join(args, " "))
			if image != "" && text != "" {
				return errors.New("pass either --image or text, not both")
			}
			if image == "" && text == "" {
				return fmt.Errorf("%w: nothing to run on, pass some text or --image", domain.ErrValidation)
			}
			inference, err := newAPI(cmd, opts)
			if err != nil {
				return err
			}
			name, err := resolveModel(inference, modelQuery, image != "")
			if err != nil {
				return err
			}
			var input any = text
			if image != "" {
				path, cleanup, err := api.NewImageSource("").Resolve(image)
				if err != nil {
					return err
				}
				defer cleanup()
				input = path
			}
			result, err := inference.RunModel(cmd.Context(), name, input)
			if err != nil {
				return err
			}
			if format == "text" {
				cmd.Println(result.Output)
				return nil
			}
			output, err := common.ToStandardJSON(result)
			if err != nil {
				return err
			}
			cmd.Print(output)
			return nil
		},
	}
	c.Flags().StringVarP(&modelQuery, "model", "m", "", "Model number or name (default: picked by the kind of input)")
	c.Flags().StringVar(&image, "image", "", "Image path or URL")
	c.Flags().StringVar(&format, "format", "json", "Output format: json or text")
	return c
}

func resolveModel(inference api.API, query string, isImage bool) (string, error) {
	if query != "" {
		return api.ResolveModelName(inference.ModelNames(), query)
	}
	if isImage {
		return models.NameImageClassification, nil
	}
	return models.NameTextSentiment, nil
}
