package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/rviana/subnetcalc/internal/app"
)

//	@title			Subnet Calculator API
//	@version		1.0
//	@description	IPv4 network arithmetic: subnetting, VLSM, supernetting and membership checks.

//	@host		localhost:4040
//	@BasePath	/api/v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.LoadConfig()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
