package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/whyrusleeping/hellabot"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/api"
	"kgeyst.com/hfdemo/pkg/inference/domain/models"
)

const (
	commandText   = ""
	commandModels = "models"
	commandInfo   = "info"
	commandImage  = "image"
)

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
	botName := config.GetStringOrDefault("botName", "Classy")
	roomName := config.GetStringOrDefault("roomName", "ClassyRoom")
	serverName := config.GetStringOrDefault("serverName", "irc.euirc.net:6667")
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	inference, err := api.NewAPI(config, logger)
	if err != nil {
		return err
	}
	imageSource := api.NewImageSource("")
	// Remote calls can take seconds; they're queued so that the bot keeps answering pings meanwhile.
	jobQueue := common.NewJobQueue(logger)
	defer jobQueue.Stop()
	ircBot, err := hbot.NewBot(serverName, botName)
	if err != nil {
		return err
	}
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG" && strings.HasPrefix(strings.ToLower(m.Content), strings.ToLower(botName))
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			what := strings.TrimSpace(m.Content[len(botName):])
			what = strings.TrimSpace(strings.TrimLeft(what, ",:"))
			if what == "" || len(m.To) == 0 || m.To[0] != '#' {
				return false
			}
			command, argument := parseRequest(what)
			switch command {
			case commandModels:
				b.Reply(m, m.From+" "+strings.Join(inference.ModelNames(), " | "))
			case commandInfo:
				if argument == "" {
					b.Reply(m, m.From+" usage: info <number or name>")
					return true
				}
				name, err := api.ResolveModelName(inference.ModelNames(), argument)
				if err != nil {
					b.Reply(m, m.From+" "+err.Error())
					return true
				}
				info, err := inference.ModelInfo(name)
				if err != nil {
					b.Reply(m, m.From+" "+err.Error())
					return true
				}
				b.Reply(m, fmt.Sprintf("%s %s (%s, %s): %s", m.From, info.Name, info.Category, info.ModelID, info.Description))
			case commandImage:
				if argument == "" {
					b.Reply(m, m.From+" usage: image <url>")
					return true
				}
				jobQueue.Enqueue(func() error {
					path, cleanup, err := imageSource.Resolve(argument)
					if err != nil {
						b.Reply(m, m.From+" "+err.Error())
						return err
					}
					defer cleanup()
					return reply(b, m, inference, models.NameImageClassification, path)
				})
			default:
				jobQueue.Enqueue(func() error {
					return reply(b, m, inference, models.NameTextSentiment, argument)
				})
			}
			return true
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{"#" + roomName}
	ircBot.Run()
	return nil
}

func reply(b *hbot.Bot, m *hbot.Message, inference api.API, modelName string, input any) error {
	result, err := inference.RunModel(context.Background(), modelName, input)
	if err != nil {
		b.Reply(m, m.From+" "+err.Error())
		return err
	}
	b.Reply(m, fmt.Sprintf("%s %s (%s, %.0f ms)", m.From, result.Output, result.ModelID, result.LatencyMS))
	return nil
}

// parseRequest splits a message addressed to the bot into a command and its argument. Anything which is not a
// command is text for the sentiment model.
func parseRequest(what string) (string, string) {
	if what == commandModels {
		return commandModels, ""
	}
	for _, command := range []string{commandInfo, commandImage} {
		if what == command {
			return command, ""
		}
		if strings.HasPrefix(what, command+" ") {
			return command, strings.TrimSpace(what[len(command)+1:])
		}
	}
	return commandText, what
}
