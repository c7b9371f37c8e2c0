package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/api"
)

type options struct {
	configPath string
	verbose    bool
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "infer",
		Short:         "Run hosted-inference models on text and images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline steps to stderr")
	rootCmd.AddCommand(
		newModelsCmd(opts),
		newRunCmd(opts),
	)
	return rootCmd
}

func newAPI(cmd *cobra.Command, opts *options) (api.API, error) {
	config, err := common.LoadConfigIfExists(opts.configPath)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.WarnLevel)
	if opts.verbose {
		log.SetLevel(logrus.InfoLevel)
	}
	logger := common.NewLogrusLogger(log.WithField("component", "inference"))
	return api.NewAPI(config, logger)
}
