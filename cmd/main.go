package main

import (
	"github.com/Hicham77500/BerserkerCut-sub001/config"
	"github.com/Hicham77500/BerserkerCut-sub001/routes"
	"github.com/Hicham77500/BerserkerCut-sub001/services"
)

func main() {
	config.InitDB()

	remote := services.NewPlanAPIClient()
	store := services.NewDBOverrideStore()
	hub := services.NewSyncHub()
	sessions := services.NewSessionManager(remote, store, hub)

	r := routes.SetupRouter(sessions, hub)
	r.Run(":8080")
}
