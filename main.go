package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/chessgame/internal/chessgame/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := chessgame(); err != nil {
		logrus.Fatal(err)
	}
}

func chessgame() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
