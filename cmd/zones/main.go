package main

import (
	"fmt"
	"os"
	"time"
	"tzconv/config"
	"tzconv/internal/domains/conversion/converter"
	"tzconv/internal/domains/zone/repository"
	"tzconv/shared"
	"tzconv/shared/constant"
	"tzconv/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	argLength        = 2
	convertArgLength = 5
)

func main() {
	logger.InitLogger()

	// stdout carries the command output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < argLength {
		log.Fatal().Msg("Command (list/convert) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	zones := repository.New(cfg)

	switch os.Args[1] {
	case "list":
		query := ""
		if len(os.Args) > argLength {
			query = os.Args[2]
		}

		for _, name := range shared.FilterFold(zones.List(), query) {
			fmt.Println(name)
		}
	case "convert":
		if len(os.Args) < convertArgLength {
			log.Fatal().Msg("Usage: zones convert <datetime> <source_timezone> <target_timezone>")
		}

		res, err := converter.New(zones).Convert(os.Args[2], os.Args[3], os.Args[4])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to convert datetime")
		}

		fmt.Printf("%s %s (UTC%s, %s)\n",
			res.Target.Format(constant.DateTimeFormat), res.Timezone, res.Offset, res.Difference)
	default:
		log.Fatal().Msg("Invalid command. Use 'list' or 'convert'")
	}
}
