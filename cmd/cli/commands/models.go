package commands

import (
	"github.com/spf13/cobra"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/api"
)

func newModelsCmd(opts *options) *cobra.Command {
	var jsonFormat bool
	c := &cobra.Command{
		Use:     "models",
		Aliases: []string{"ls"},
		Short:   "List the available models",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inference, err := newAPI(cmd, opts)
			if err != nil {
				return err
			}
			infos := make([]api.ModelInfo, 0, len(inference.ModelNames()))
			for _, name := range inference.ModelNames() {
				info, err := inference.ModelInfo(name)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			if jsonFormat {
				output, err := common.ToStandardJSON(infos)
				if err != nil {
					return err
				}
				cmd.Print(output)
				return nil
			}
			for i, info := range infos {
				cmd.Printf("%d. %s\t%s\t%s\n", i+1, info.Name, info.Category, info.ModelID)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&jsonFormat, "json", false, "List models in a JSON format")
	return c
}
