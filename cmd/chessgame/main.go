package main

import (
	"flag"
	"log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lewismcgrogan/LewisChessGame/pkg/game"
	"github.com/lewismcgrogan/LewisChessGame/pkg/gui"
	"github.com/lewismcgrogan/LewisChessGame/pkg/util"
)

func main() {
	logPath := flag.String("log", "./chessgame.log", "path to log file")
	configPath := flag.String("config", "", "path to JSON config file")
	themeName := flag.String("theme", "", "theme name")
	fen := flag.String("fen", "", "starting position in FEN, standard start when empty")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		color.Red("chessgame needs an interactive terminal")
		os.Exit(1)
	}

	util.InitLog(*logPath, "CLIENT: ")

	var config gui.Config
	if *configPath != "" {
		var err error
		if config, err = gui.ReadConfig(*configPath); err != nil {
			color.Red("cannot read config %s: %v", *configPath, err)
			os.Exit(1)
		}
	}
	theme, err := gui.ResolveTheme(*themeName, config)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	var session *game.Session
	if *fen == "" {
		session = game.NewSession()
	} else {
		if session, err = game.NewSessionFromFEN(*fen); err != nil {
			color.Red("bad FEN %q: %v", *fen, err)
			os.Exit(1)
		}
	}

	log.Printf("session %s started", session.Name())
	if err := gui.New(session, theme).Run(); err != nil {
		log.Fatal(err)
	}
}
