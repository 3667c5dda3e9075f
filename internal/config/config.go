package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	DBName      string
	Port        string
	TokenSecret string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, falling back to process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "recycleHub-db"
	}

	return Config{
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      dbName,
		Port:        port,
		TokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
	}
}
