package main

import (
	_ "github.com/johnper68/twilio-bot-occipedido/docs"
	"github.com/johnper68/twilio-bot-occipedido/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Occipedido WhatsApp Order Bot
// @version         1.0
// @description     Conversational order-taking bot: Twilio WhatsApp webhook in, AppSheet tables out.

// @host localhost:3000

// @BasePath  /

func main() {
	routes.Run()
}
