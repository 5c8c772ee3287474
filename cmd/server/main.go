package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"k8s.io/klog/v2"

	"github.com/amoebalab/menavky/internal/config"
	"github.com/amoebalab/menavky/internal/server"
)

var (
	flagAddr = flag.String("addr", "", "Address to listen on (default: auto-port on localhost, or MENAVKY_ADDR)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *flagAddr != "" {
		cfg.Addr = *flagAddr
	}

	started := make(chan *server.ServerState, 1)
	ctx := context.Background()

	go func() {
		state := <-started
		fmt.Printf("Menavky server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, cfg, started); err != nil {
		log.Fatal(err)
	}
}
