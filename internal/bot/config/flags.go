package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/teamfinder/internal/flagx"
)

// parseFlags overlays the command-line flags onto config.
//
// Supported flags:
//
//	-t string   bot token
//	-d string   database DSN
//	-m int      moderator chat id (negative ids need the -m=-100… form)
//	-p string   public channel username
//	-o int      owner id
//	-a string   ops HTTP address
//	-l string   log level
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-t", "-d", "-m", "-p", "-o", "-a", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.BotToken, "t", config.BotToken, "bot token")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.Int64Var(&config.ModeratorChatID, "m", config.ModeratorChatID, "moderator chat id")
	fs.StringVar(&config.PublicChannel, "p", config.PublicChannel, "public channel username")
	fs.Int64Var(&config.OwnerID, "o", config.OwnerID, "owner id")
	fs.StringVar(&config.OpsAddr, "a", config.OpsAddr, "ops http address")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}
