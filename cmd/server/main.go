package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/lewismcgrogan/LewisChessGame/pkg/server"
	"github.com/lewismcgrogan/LewisChessGame/pkg/util"
)

func main() {
	addr := flag.String("addr", ":2222", "address to listen on")
	cmdPath := flag.String("bin", "chessgame", "path to the chessgame binary")
	hostKey := flag.String("hostkey", "", "path to SSH host key, ephemeral when empty")
	logPath := flag.String("log", "./chessgame-server.log", "path to log file")
	flag.Parse()

	util.InitLog(*logPath, "SERVER: ")

	s, err := server.New(*addr, *cmdPath, *hostKey)
	if err != nil {
		color.Red("server setup failed: %v", err)
		os.Exit(1)
	}

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		<-sigc
		s.Close()
	}()

	log.Printf("listening at %s", *addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
