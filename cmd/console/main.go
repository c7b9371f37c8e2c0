package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/api"
	"kgeyst.com/hfdemo/pkg/inference/domain"
)

const helpMessage = `Commands:
  :models        list the models
  :load <model>  load a model (by number or name)
  :info          show the loaded model
  :help          show this message
Anything else is input for the loaded model: text for text models, an image path or URL for vision models.`

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfigIfExists("config.yaml")
	if err != nil {
		return err
	}
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	inference, err := api.NewAPI(config, logger)
	if err != nil {
		return err
	}
	if api.ResolveToken(config) == "" {
		fmt.Printf("note: set %s (or hfToken in config.yaml), otherwise no model will load\n", api.EnvHFToken)
	}
	imageSource := api.NewImageSource("")
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	fmt.Println(helpMessage)
	printModels(inference)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		command, argument := parseCommand(line)
		switch command {
		case "":
			run(inference, imageSource, argument)
		case ":help":
			fmt.Println(helpMessage)
		case ":models":
			printModels(inference)
		case ":info":
			printCurrentModel(inference)
		case ":load":
			if argument == "" {
				fmt.Println("usage: :load <model>")
				continue
			}
			loadModel(inference, argument)
		default:
			fmt.Printf("unknown command %s, see :help\n", command)
		}
	}
	return nil
}

// parseCommand splits ":load 2" into ":load" and "2". A line which doesn't start with ':' is input for the model,
// and is returned with an empty command.
func parseCommand(line string) (string, string) {
	if !strings.HasPrefix(line, ":") {
		return "", line
	}
	command, argument, _ := strings.Cut(line, " ")
	return command, strings.TrimSpace(argument)
}

func printModels(inference api.API) {
	current := inference.CurrentModel()
	for i, name := range inference.ModelNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Printf("%s %d. %s\n", marker, i+1, name)
	}
}

func printCurrentModel(inference api.API) {
	current := inference.CurrentModel()
	if current == "" {
		fmt.Println("no model loaded, see :models and :load")
		return
	}
	info, err := inference.ModelInfo(current)
	if err != nil {
		fmt.Println(err)
		return
	}
	printModelInfo(info)
}

func printModelInfo(info domain.ModelInfo) {
	fmt.Printf("Model Name: %s\nCategory: %s\nHugging Face ID: %s\nShort Description:\n  %s\n", info.Name, info.Category, info.ModelID, info.Description)
}

func loadModel(inference api.API, query string) {
	name, err := api.ResolveModelName(inference.ModelNames(), query)
	if err != nil {
		fmt.Println(err)
		return
	}
	info, err := inference.LoadModel(name)
	if err != nil {
		fmt.Println(err)
		return
	}
	printModelInfo(info)
}

func run(inference api.API, imageSource *api.ImageSource, line string) {
	current := inference.CurrentModel()
	if current == "" {
		fmt.Println("no model loaded, see :models and :load")
		return
	}
	info, err := inference.ModelInfo(current)
	if err != nil {
		fmt.Println(err)
		return
	}
	var input any = line
	if info.Category == domain.ModelCategoryVision {
		path, cleanup, err := imageSource.Resolve(line)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer cleanup()
		input = path
	}
	result, err := inference.Run(context.Background(), input)
	if err != nil {
		fmt.Println(err)
		return
	}
	output, err := common.ToStandardJSON(result)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(output)
}
