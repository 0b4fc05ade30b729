package main

import (
	"log"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/config"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/routes"
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"
)

func main() {
	config.InitDB()
	tokens := services.NewTokenService()
	r := routes.SetupRouter(config.DB, tokens, config.UploadDir())
	if err := r.Run(config.Addr()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
